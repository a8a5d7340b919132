// Package container wires cronviz services using go.uber.org/dig.
package container

import (
	"io"
	"time"

	"go.uber.org/dig"

	"github.com/cronviz/cronviz/internal/config"
	"github.com/cronviz/cronviz/internal/render"
	"github.com/cronviz/cronviz/internal/server"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	first    time.Weekday
	loc      *time.Location
	renderer *render.Renderer
	srv      *server.Server
}

func (c *Container) Config() *config.Config     { return c.cfg }
func (c *Container) FirstWeekday() time.Weekday { return c.first }
func (c *Container) Location() *time.Location   { return c.loc }
func (c *Container) Renderer() *render.Renderer { return c.renderer }
func (c *Container) Server() *server.Server     { return c.srv }

// Output describes where terminal views are written.
type Output struct {
	W        io.Writer
	Plain    bool
	BarCells int
}

// New builds and wires all services from cfg.
func New(cfg *config.Config, out Output) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() Output { return out }); err != nil {
		return nil, err
	}
	if err := d.Provide(firstWeekday); err != nil {
		return nil, err
	}
	if err := d.Provide(location); err != nil {
		return nil, err
	}
	if err := d.Provide(newRenderer); err != nil {
		return nil, err
	}
	if err := d.Provide(newServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		first time.Weekday,
		loc *time.Location,
		renderer *render.Renderer,
		srv *server.Server,
	) {
		result = &Container{
			cfg:      cfg,
			first:    first,
			loc:      loc,
			renderer: renderer,
			srv:      srv,
		}
	})
	return result, err
}

func firstWeekday(cfg *config.Config) (time.Weekday, error) {
	return cfg.Weekday()
}

func location(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func newRenderer(out Output) *render.Renderer {
	return render.New(out.W, render.Options{BarCells: out.BarCells, Plain: out.Plain})
}

func newServer(cfg *config.Config, first time.Weekday, loc *time.Location) *server.Server {
	return server.New(server.Options{
		Addr:           cfg.Server.Addr,
		FirstWeekday:   first,
		Location:       loc,
		ThumbnailCells: cfg.ThumbnailCells,
		Resolve:        cfg.ResolveSchedule,
	})
}
