package demo

import (
	"fmt"
	"log/slog"
	gomath "math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/stipple-dev/stipple"
	"github.com/stipple-dev/stipple/internal/config"
	"github.com/stipple-dev/stipple/internal/engine/camera"
	"github.com/stipple-dev/stipple/internal/engine/debug"
	"github.com/stipple-dev/stipple/internal/engine/input"
	"github.com/stipple-dev/stipple/internal/engine/picking"
	"github.com/stipple-dev/stipple/internal/engine/renderer"
	"github.com/stipple-dev/stipple/internal/engine/window"
	"github.com/stipple-dev/stipple/pkg/math"
)

const appTitle = "Stipple Viewer"

// pickRange limits how far a mouse pick ray reaches into the scene.
const pickRange = 100

// App owns the window, renderer and showcase scene and runs the main loop.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	drawer   *stipple.Drawer
	scene    *Scene
	shots    *debug.ScreenshotCapture

	width  int
	height int

	invViewProj math.Mat4

	// clock is the animation time in seconds. It stops while paused,
	// which freezes the dash phase through the drawer's clock source.
	clock  float64
	paused bool

	leftDown bool
	dragged  float32
}

// New creates the viewer with all engine subsystems initialized.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing viewer",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"fullscreen", cfg.Window.Fullscreen,
	)

	a := &App{
		cfg:         cfg,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		invViewProj: math.Identity(),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      appTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.NewOrbitCamera()
	a.camera.Distance = cfg.Camera.Distance
	a.camera.RotationX = cfg.Camera.Pitch * gomath.Pi / 180
	a.camera.RotationY = cfg.Camera.Yaw * gomath.Pi / 180

	a.drawer = stipple.NewDrawer(a.renderer)
	a.drawer.SetClock(func() float64 { return a.clock })

	a.scene = newScene(cfg)
	a.shots = debug.NewScreenshotCapture("screenshots", "stipple")

	slog.Info("viewer initialized")
	return a, nil
}

// Run executes the main loop until the window closes or ESC is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting viewer loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.update(dt)
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.cfg.Window.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s | %d fps | %d lines",
					appTitle, frameCount, a.renderer.LineCount()))
			}
			slog.Debug("frame stats", "fps", frameCount, "lines", a.renderer.LineCount())
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	slog.Info("viewer loop ended")
	return nil
}

// Close shuts down the renderer and window.
func (a *App) Close() {
	slog.Info("shutting down viewer")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			a.width = e.Width
			a.height = e.Height
			a.renderer.Resize(e.Width, e.Height)

		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_SPACE:
				a.paused = !a.paused
				slog.Info("animation paused", "paused", a.paused)
			case sdl.SCANCODE_H:
				a.camera.FitToBounds(a.scene.bounds())
			case sdl.SCANCODE_F12:
				a.screenshot()
			}

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				a.leftDown = true
				a.dragged = 0
			}

		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				a.leftDown = false
				// A click that never turned into a drag picks instead
				if a.dragged < 3 {
					a.pick(e.MouseX, e.MouseY)
				}
			}

		case input.EventMouseMove:
			if a.leftDown {
				dx := float32(e.RelX)
				dy := float32(e.RelY)
				a.dragged += float32(gomath.Abs(float64(dx))) + float32(gomath.Abs(float64(dy)))
				a.camera.HandleDrag(dx, dy)
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(e.WheelY))
		}
	}
}

func (a *App) update(dt float64) {
	if !a.paused {
		a.clock += dt
	}

	if a.input.IsKeyPressed(sdl.SCANCODE_G) {
		a.cfg.Scene.ShowGrid = !a.cfg.Scene.ShowGrid
	}
	if a.input.IsKeyPressed(sdl.SCANCODE_X) {
		a.cfg.Scene.ShowAxes = !a.cfg.Scene.ShowAxes
	}

	// Held keys pan the orbit center. Scaled by dt so panning speed
	// does not depend on the frame rate.
	keys := sdl.GetKeyboardState()
	var forward, right, up float32
	if keys[sdl.SCANCODE_W] != 0 {
		forward++
	}
	if keys[sdl.SCANCODE_S] != 0 {
		forward--
	}
	if keys[sdl.SCANCODE_D] != 0 {
		right++
	}
	if keys[sdl.SCANCODE_A] != 0 {
		right--
	}
	if keys[sdl.SCANCODE_E] != 0 {
		up++
	}
	if keys[sdl.SCANCODE_Q] != 0 {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		scale := float32(dt) * 60
		a.camera.HandleMovement(forward*scale, right*scale, up*scale)
	}
}

func (a *App) render() {
	aspect := float32(a.width) / float32(a.height)
	proj := math.Perspective(a.cfg.Camera.FOV*gomath.Pi/180, aspect, 0.1, 500)
	viewProj := proj.Mul(a.camera.ViewMatrix())
	a.invViewProj = viewProj.Inverse()

	a.renderer.Begin(a.clock)
	a.scene.draw(a.drawer, a.clock)
	a.renderer.Flush(viewProj)
}

// pick casts a ray through the clicked pixel. Obstacle hits are shown
// with a raycast visualization, ground hits with a cross marker. Both
// persist for a short time.
func (a *App) pick(x, y int) {
	ray := picking.ScreenToRay(float32(x), float32(y),
		float32(a.width), float32(a.height), a.invViewProj)

	if hit := a.scene.raycastObstacles(ray, pickRange); hit != nil {
		style := stipple.DefaultRaycastStyle()
		style.Duration = 2.5
		a.drawer.DrawRaycast(ray.Origin, ray.Direction, hit, hit.Distance+3, style)
		slog.Debug("picked obstacle", "distance", hit.Distance)
		return
	}

	if p, ok := ray.IntersectPlaneY(0); ok {
		a.drawer.DrawCross(p, 0.5, stipple.LineStyle{
			Color:     stipple.ColorYellow,
			Duration:  2.5,
			DepthTest: true,
		})
		slog.Debug("marked ground", "x", p.X, "z", p.Z)
	}
}

func (a *App) screenshot() {
	w, h := a.window.GetSize()
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		slog.Error("screenshot failed", "error", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}
