package coordinator

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"
	"golang.org/x/image/colornames"

	"StripedMandelbrot/mandelbrot"
	"StripedMandelbrot/misc"
	"StripedMandelbrot/palette"
	"StripedMandelbrot/worker"
)

type Settings struct {
	logger bslogger.Logger

	FitAspect          bool
	Height             int
	InteriorColor      string
	Options            mandelbrot.Options
	Palette            palette.ControlColors
	RunName            string
	SavePath           string
	TableSize          int
	TransitionSettings []TransitionSettings
	Viewport           mandelbrot.Viewport
	Width              int
	WorkerAddresses    []string
	WorkerTransport    string
	Workers            int
}

func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		misc.CheckError(err, s.logger, misc.Fatal)
		misc.CheckError(sonic.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	}
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Canvas: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Viewport: %s\n", s.Viewport.String())
	output += fmt.Sprintf("Options: %s\n", s.Options.String())
	output += fmt.Sprintf("Palette: %s\n", s.Palette.String())
	output += fmt.Sprintf("Interior Color: %s\n", s.InteriorColor)
	output += fmt.Sprintf("Workers: %d %v\n", s.Workers, s.WorkerAddresses)
	return output
}

// Verify fills in defaults for everything left unset
func (s *Settings) Verify() error {
	if s.Width <= 0 {
		s.Width = 1920
	}
	if s.Height <= 0 {
		s.Height = 1080
	}
	if s.Viewport == (mandelbrot.Viewport{}) {
		s.Viewport = mandelbrot.DefaultViewport
	}
	if err := s.Viewport.Verify(); err != nil {
		return err
	}
	if err := s.Options.Verify(); err != nil {
		return err
	}
	if len(s.Palette.Positions) == 0 && len(s.Palette.Colors) == 0 {
		s.Palette = palette.DefaultControlColors
	}
	if len(s.Palette.Positions) != len(s.Palette.Colors) {
		return fmt.Errorf("%w: palette has %d positions for %d colors", palette.ErrInvalidInput, len(s.Palette.Positions), len(s.Palette.Colors))
	}
	if s.TableSize <= 0 {
		s.TableSize = palette.DefaultTableSize
	}
	if s.InteriorColor == "" {
		s.InteriorColor = "black"
	}
	if _, err := s.Interior(); err != nil {
		return err
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.WorkerTransport == "" {
		s.WorkerTransport = worker.TransportTcp
	}
	if len(s.WorkerAddresses) > 0 {
		// Every remote worker is one lane
		s.Workers = len(s.WorkerAddresses)
	}
	if s.Workers <= 0 {
		s.Workers = DefaultWorkers
	}
	if len(s.TransitionSettings) == 0 {
		s.TransitionSettings = []TransitionSettings{{Frames: 1}}
	}
	for i := 0; i < len(s.TransitionSettings); i++ {
		misc.CheckError(s.TransitionSettings[i].Verify(), s.logger, misc.Warning)
	}
	return nil
}

// Interior resolves InteriorColor, which is either a color name or a #rrggbb hex value
func (s *Settings) Interior() (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s.InteriorColor))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		channels, err := hex.DecodeString(name[1:])
		if err == nil {
			return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown interior color %q", s.InteriorColor)
}

// Request builds the render request for viewport painted onto surface
func (s *Settings) Request(viewport mandelbrot.Viewport, surface Surface) Request {
	if s.FitAspect {
		viewport = viewport.FitAspect(s.Width, s.Height)
	}
	interior, _ := s.Interior()
	return Request{
		Viewport:  viewport,
		Width:     s.Width,
		Height:    s.Height,
		Options:   s.Options,
		Controls:  s.Palette,
		TableSize: s.TableSize,
		Interior:  interior,
		Surface:   surface,
	}
}

// Renderers creates one lane per remote worker address, or Workers local lanes when no addresses are configured.
// The returned clients must be disconnected by the caller.
func (s *Settings) Renderers() ([]worker.Renderer, []func() error, error) {
	if len(s.WorkerAddresses) == 0 {
		renderers := make([]worker.Renderer, s.Workers)
		for i := range renderers {
			renderers[i] = worker.Local{}
		}
		return renderers, nil, nil
	}

	renderers := make([]worker.Renderer, 0, len(s.WorkerAddresses))
	disconnects := make([]func() error, 0, len(s.WorkerAddresses))
	for _, address := range s.WorkerAddresses {
		client := worker.NewClient(s.WorkerTransport, address)
		if err := client.Connect(); err != nil {
			for _, disconnect := range disconnects {
				disconnect()
			}
			return nil, nil, fmt.Errorf("connecting to worker %s: %w", address, err)
		}
		renderers = append(renderers, worker.NewRemote(client))
		disconnects = append(disconnects, client.Disconnect)
	}
	return renderers, disconnects, nil
}
