package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/shortpath/navigator"
)

// ErrMissingURI indicates a Neo4j configuration without a URI.
var ErrMissingURI = errors.New("source: neo4j uri is required")

// Default Cypher queries used by Neo4jLoader.
const (
	DefaultLocationQuery = `MATCH (l:Location)
RETURN l.name AS name, l.latitude AS latitude, l.longitude AS longitude
ORDER BY name`

	DefaultConnectionQuery = `MATCH (a:Location)-[r:ROAD]->(b:Location)
RETURN a.name AS from, b.name AS to, r.weight AS weight,
       coalesce(r.bidirectional, false) AS bidirectional
ORDER BY from, to`
)

// Record is one result row keyed by column name.
type Record map[string]any

// Runner executes a read-only Cypher query and returns every row.
type Runner interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}

// Neo4jConfig describes a Bolt connection.
type Neo4jConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// Neo4jRunner is a Runner backed by the official Neo4j driver.
type Neo4jRunner struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jRunner connects and verifies connectivity.
func NewNeo4jRunner(ctx context.Context, cfg Neo4jConfig) (*Neo4jRunner, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxConnections > 0 {
			c.MaxConnectionPoolSize = cfg.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &Neo4jRunner{driver: driver, database: cfg.Database}, nil
}

// Run executes cypher in a read session.
func (r *Neo4jRunner) Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: r.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		row := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			row[key] = value
		}
		records = append(records, row)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Close releases the driver.
func (r *Neo4jRunner) Close(ctx context.Context) error { return r.driver.Close(ctx) }

// Neo4jLoader reads a location graph out of a graph database.
type Neo4jLoader struct {
	Runner          Runner
	LocationQuery   string
	ConnectionQuery string
}

// NewNeo4jLoader returns a loader using the default queries.
func NewNeo4jLoader(r Runner) *Neo4jLoader {
	return &Neo4jLoader{Runner: r, LocationQuery: DefaultLocationQuery, ConnectionQuery: DefaultConnectionQuery}
}

// Load runs both queries and assembles a Spec.
func (l *Neo4jLoader) Load(ctx context.Context) (*Spec, error) {
	locRows, err := l.Runner.Run(ctx, l.LocationQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("source: query locations: %w", err)
	}
	spec := &Spec{Locations: make([]navigator.Location, 0, len(locRows))}
	for i, row := range locRows {
		loc, err := decodeLocation(row)
		if err != nil {
			return nil, fmt.Errorf("source: location row %d: %w", i, err)
		}
		spec.Locations = append(spec.Locations, loc)
	}

	conRows, err := l.Runner.Run(ctx, l.ConnectionQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("source: query connections: %w", err)
	}
	for i, row := range conRows {
		c, err := decodeConnection(row)
		if err != nil {
			return nil, fmt.Errorf("source: connection row %d: %w", i, err)
		}
		spec.Connections = append(spec.Connections, c)
	}

	return spec, nil
}

// ErrBadRecord indicates a result row with a missing or mistyped column.
var ErrBadRecord = errors.New("source: bad record")

func decodeLocation(row Record) (navigator.Location, error) {
	name, err := stringField(row, "name")
	if err != nil {
		return navigator.Location{}, err
	}
	lat, err := floatField(row, "latitude")
	if err != nil {
		return navigator.Location{}, err
	}
	lon, err := floatField(row, "longitude")
	if err != nil {
		return navigator.Location{}, err
	}

	return navigator.Location{Name: name, Latitude: lat, Longitude: lon}, nil
}

func decodeConnection(row Record) (Connection, error) {
	from, err := stringField(row, "from")
	if err != nil {
		return Connection{}, err
	}
	to, err := stringField(row, "to")
	if err != nil {
		return Connection{}, err
	}
	c := Connection{From: from, To: to}
	if v, ok := row["weight"]; ok && v != nil {
		w, err := floatField(row, "weight")
		if err != nil {
			return Connection{}, err
		}
		c.Weight = &w
	} else {
		c.Geodesic = true
	}
	if v, ok := row["bidirectional"].(bool); ok {
		c.Bidirectional = &v
	}

	return c, nil
}

func stringField(row Record, key string) (string, error) {
	s, ok := row[key].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %q is not a non-empty string", ErrBadRecord, key)
	}

	return s, nil
}

// floatField accepts the numeric types the driver produces.
func floatField(row Record, key string) (float64, error) {
	switch v := row[key].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %q is %T, want number", ErrBadRecord, key, row[key])
	}
}
