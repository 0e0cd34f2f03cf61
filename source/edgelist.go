package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/katalvlaran/shortpath/navigator"
)

// ParseEdgeList reads the plain-text topology format:
//
//	<V>
//	<u> <v> <weight>
//	...
//	done
//
// Vertices are named "0".."V-1" and placed at (0, 0). Edges are directed.
// Blank lines and lines starting with '#' are skipped; input ends at "done"
// or EOF.
func ParseEdgeList(r io.Reader) (*Spec, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("source: read edge list: %w", err)
		}
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformedLine)
	}
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w %d: vertex count %q", ErrMalformedLine, lineNo, header)
	}

	spec := &Spec{Locations: make([]navigator.Location, n)}
	for i := 0; i < n; i++ {
		spec.Locations[i] = navigator.Location{Name: strconv.Itoa(i)}
	}

	for {
		line, ok := next()
		if !ok || strings.EqualFold(line, "done") {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w %d: want \"u v weight\", got %q", ErrMalformedLine, lineNo, line)
		}
		u, uerr := strconv.Atoi(fields[0])
		v, verr := strconv.Atoi(fields[1])
		w, werr := strconv.ParseFloat(fields[2], 64)
		if uerr != nil || verr != nil || werr != nil {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, lineNo, line)
		}
		spec.Connections = append(spec.Connections, Connection{
			From:          strconv.Itoa(u),
			To:            strconv.Itoa(v),
			Weight:        ptr.To(w),
			Bidirectional: ptr.To(false),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("source: read edge list: %w", err)
	}

	return spec, nil
}
