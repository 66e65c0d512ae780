package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/stdlib"
)

// The repositories write queries with `?` placeholders, which Postgres does
// not understand. This driver wraps the pgx stdlib driver and rewrites every
// query to the $1..$n form before it reaches the server, so the same queries
// run unchanged against both Postgres and the sqlite test databases.
const driverName = "pgx-positional"

func init() {
	sql.Register(driverName, &positionalDriver{parent: stdlib.GetDefaultDriver()})
}

type positionalDriver struct {
	parent driver.Driver
}

func (d *positionalDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.parent.Open(name)
	if err != nil {
		return nil, err
	}
	return &positionalConn{conn: conn}, nil
}

type positionalConn struct {
	conn driver.Conn
}

func (c *positionalConn) Prepare(query string) (driver.Stmt, error) {
	return c.conn.Prepare(NumberPlaceholders(query))
}

func (c *positionalConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	rewritten := NumberPlaceholders(query)
	if pc, ok := c.conn.(driver.ConnPrepareContext); ok {
		return pc.PrepareContext(ctx, rewritten)
	}
	return c.conn.Prepare(rewritten)
}

func (c *positionalConn) Begin() (driver.Tx, error) {
	return c.conn.Begin()
}

func (c *positionalConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if bt, ok := c.conn.(driver.ConnBeginTx); ok {
		return bt.BeginTx(ctx, opts)
	}
	return c.conn.Begin()
}

func (c *positionalConn) Close() error {
	return c.conn.Close()
}

// NumberPlaceholders rewrites `?` placeholders to numbered $1..$n ones.
// Question marks inside single-quoted string literals are left alone.
func NumberPlaceholders(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inLiteral = !inLiteral
			b.WriteByte(ch)
		case ch == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
