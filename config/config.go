package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	cloth "github.com/esimov/ascii-cloth/cloth-solver"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "CLOTH_"

// Config holds every startup parameter of the simulation and its front end.
type Config struct {
	Width, Height float64

	Columns, Rows int
	Gap           float64
	// Centered places the grid in the middle of the box and ignores OffsetX.
	// Setting OffsetX through the environment or a flag clears it.
	Centered         bool
	OffsetX, OffsetY float64

	Mass            float64
	RestingDistance float64
	Stiffness       float64
	TearDistance    float64

	Gravity  float64
	Timestep time.Duration
	FPS      int

	DragRadius float64
	DragGain   float64
	Debounce   time.Duration

	Backend string
	Remote  string
	Prefix  string
	Root    string
	LogFile string

	Headless  bool
	Frames    int
	FrameTime time.Duration
}

// Default returns the stock configuration: a 50x15 cloth hanging from the
// top of an 800x900 box, stepped at 60Hz.
func Default() Config {
	return Config{
		Width:           800,
		Height:          900,
		Columns:         50,
		Rows:            15,
		Gap:             10,
		Centered:        true,
		OffsetY:         50,
		Mass:            1,
		RestingDistance: 10,
		Stiffness:       1,
		TearDistance:    100,
		Gravity:         0.2,
		Timestep:        time.Second / 60,
		FPS:             144,
		DragRadius:      20,
		DragGain:        2,
		Debounce:        200 * time.Millisecond,
		Backend:         "termbox",
		Prefix:          "/",
		Root:            ".",
		LogFile:         "debug.log",
		Frames:          600,
		FrameTime:       time.Second / 60,
	}
}

// LoadEnv loads the given dotenv files into the environment, then applies
// every CLOTH_* variable found there. Missing files are skipped.
func (c *Config) LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "loading %s", f)
		}
		log.Printf("loaded environment variables from %s", f)
	}

	for _, v := range c.vars() {
		raw, ok := os.LookupEnv(EnvPrefix + v.name)
		if !ok {
			continue
		}
		if err := v.set(strings.TrimSpace(raw)); err != nil {
			return errors.Wrapf(err, "parsing %s%s=%q", EnvPrefix, v.name, raw)
		}
	}
	return nil
}

// RegisterFlags binds the configuration to command line flags. The current
// values become the flag defaults, so call it after LoadEnv.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Width, "width", c.Width, "width of the simulated box")
	fs.Float64Var(&c.Height, "height", c.Height, "height of the simulated box")
	fs.IntVar(&c.Columns, "columns", c.Columns, "number of grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.Float64Var(&c.Gap, "gap", c.Gap, "distance between neighbouring points")
	fs.Func("offset-x", "x of the top left point (default: centred)", c.offsetXVar())
	fs.Float64Var(&c.OffsetY, "offset-y", c.OffsetY, "y of the top left point")
	fs.Float64Var(&c.Mass, "mass", c.Mass, "mass of every point")
	fs.Float64Var(&c.RestingDistance, "rest", c.RestingDistance, "resting length of a link")
	fs.Float64Var(&c.Stiffness, "stiffness", c.Stiffness, "link stiffness in [0, 1]")
	fs.Float64Var(&c.TearDistance, "tear", c.TearDistance, "length past which a link tears")
	fs.Float64Var(&c.Gravity, "gravity", c.Gravity, "gravity applied when enabled")
	fs.DurationVar(&c.Timestep, "timestep", c.Timestep, "fixed simulation sub-step")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame rate cap")
	fs.Float64Var(&c.DragRadius, "drag-radius", c.DragRadius, "radius of the drag tool")
	fs.Float64Var(&c.DragGain, "drag-gain", c.DragGain, "displacement multiplier of the drag tool")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "minimum delay between two toggles of a shortcut")
	fs.StringVar(&c.Backend, "backend", c.Backend, "terminal backend: termbox or tcell")
	fs.StringVar(&c.Remote, "a", c.Remote, "address to serve remote input on (host:port), empty disables it")
	fs.StringVar(&c.Prefix, "p", c.Prefix, "prefix path under")
	fs.StringVar(&c.Root, "r", c.Root, "root path to serve")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a terminal")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to simulate in headless mode")
	fs.DurationVar(&c.FrameTime, "frame-time", c.FrameTime, "synthetic frame duration in headless mode")
}

// Validate checks the configuration for values the simulation can't run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("box must have a positive size, got %vx%v", c.Width, c.Height)
	case c.Timestep <= 0:
		return errors.Errorf("timestep must be positive, got %v", c.Timestep)
	case c.FPS <= 0:
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	case c.Headless && (c.Frames < 0 || c.FrameTime <= 0):
		return errors.Errorf("headless run needs a frame count and a positive frame time")
	case !c.Headless && c.LogFile == "":
		return errors.Errorf("a log file is required while the terminal owns the screen")
	}
	switch c.Backend {
	case "termbox", "tcell":
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	return errors.Wrap(c.Grid().Validate(), "invalid grid")
}

// Offset returns the position of the top left point.
func (c Config) Offset() r2.Vec {
	x := c.OffsetX
	if c.Centered {
		x = (c.Width - float64(c.Columns)*c.Gap) / 2
	}
	return r2.Vec{X: x, Y: c.OffsetY}
}

// Grid returns the cloth layout described by the configuration.
func (c Config) Grid() cloth.Grid {
	return cloth.Grid{
		Columns:         c.Columns,
		Rows:            c.Rows,
		Gap:             c.Gap,
		Offset:          c.Offset(),
		Mass:            c.Mass,
		RestingDistance: c.RestingDistance,
		Stiffness:       c.Stiffness,
		TearDistance:    c.TearDistance,
	}
}

// Settings returns fresh runtime settings for the simulation.
func (c Config) Settings() *cloth.Settings {
	return &cloth.Settings{
		Gravity:     c.Gravity,
		BaseGravity: c.Gravity,
		Bounds:      r2.Vec{X: c.Width, Y: c.Height},
		DragRadius:  c.DragRadius,
		DragGain:    c.DragGain,
	}
}

type envVar struct {
	name string
	set  func(string) error
}

func (c *Config) vars() []envVar {
	return []envVar{
		{"WIDTH", floatVar(&c.Width)},
		{"HEIGHT", floatVar(&c.Height)},
		{"COLUMNS", intVar(&c.Columns)},
		{"ROWS", intVar(&c.Rows)},
		{"GAP", floatVar(&c.Gap)},
		{"OFFSET_X", c.offsetXVar()},
		{"OFFSET_Y", floatVar(&c.OffsetY)},
		{"MASS", floatVar(&c.Mass)},
		{"REST", floatVar(&c.RestingDistance)},
		{"STIFFNESS", floatVar(&c.Stiffness)},
		{"TEAR", floatVar(&c.TearDistance)},
		{"GRAVITY", floatVar(&c.Gravity)},
		{"TIMESTEP", durationVar(&c.Timestep)},
		{"FPS", intVar(&c.FPS)},
		{"DRAG_RADIUS", floatVar(&c.DragRadius)},
		{"DRAG_GAIN", floatVar(&c.DragGain)},
		{"DEBOUNCE", durationVar(&c.Debounce)},
		{"BACKEND", stringVar(&c.Backend)},
		{"REMOTE", stringVar(&c.Remote)},
		{"PREFIX", stringVar(&c.Prefix)},
		{"ROOT", stringVar(&c.Root)},
		{"LOG", stringVar(&c.LogFile)},
		{"HEADLESS", boolVar(&c.Headless)},
		{"FRAMES", intVar(&c.Frames)},
		{"FRAME_TIME", durationVar(&c.FrameTime)},
	}
}

// offsetXVar sets an explicit horizontal offset, which turns centring off.
func (c *Config) offsetXVar() func(string) error {
	set := floatVar(&c.OffsetX)
	return func(s string) error {
		if err := set(s); err != nil {
			return err
		}
		c.Centered = false
		return nil
	}
}

func floatVar(p *float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
}

func intVar(p *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
}

func boolVar(p *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
}

func durationVar(p *time.Duration) func(string) error {
	return func(s string) error {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
}

func stringVar(p *string) func(string) error {
	return func(s string) error {
		*p = s
		return nil
	}
}
