// orrery - Terminal Solar System Renderer
// Watch a procedurally shaded planetary system orbit in your terminal.
//
// Controls:
//
//	Arrows      - Orbit the camera around its target
//	W/S/A/D     - Pan the view (look around)
//	N/M         - Zoom in/out
//	I/K/J/L     - Fly forward/back/left/right
//	U/O         - Fly down/up
//	B           - Toggle normal debug shading
//	V           - Toggle ship
//	P           - Save a PNG snapshot
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/models"
	"github.com/solweaver/orrery/pkg/render"
	"github.com/solweaver/orrery/pkg/scene"
)

var (
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "51,85,85", "Background color (R,G,B)")
	shipPath   = flag.String("ship", "", "Path to a ship model (OBJ/GLB), procedural hull if empty")
	snapshots  = flag.String("snapshot-dir", ".", "Directory for PNG snapshots")
	debugStart = flag.Bool("debug", false, "Start with normal debug shading")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orrery - Terminal Solar System Renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orrery [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows      - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pan view\n")
		fmt.Fprintf(os.Stderr, "  N/M         - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  I/K/J/L     - Fly forward/back/left/right\n")
		fmt.Fprintf(os.Stderr, "  U/O         - Fly down/up\n")
		fmt.Fprintf(os.Stderr, "  B           - Toggle debug shading\n")
		fmt.Fprintf(os.Stderr, "  V           - Toggle ship\n")
		fmt.Fprintf(os.Stderr, "  P           - Save PNG snapshot\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// VelocityAxis tracks one camera control axis with spring decay so motion
// eases out instead of stopping dead.
type VelocityAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewVelocityAxis creates an axis with a critically damped spring.
func NewVelocityAxis(fps int) VelocityAxis {
	return VelocityAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward 0 and returns the step to apply this frame.
func (a *VelocityAxis) Update() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return step
}

// CameraMotion bundles the spring-smoothed control axes.
type CameraMotion struct {
	OrbitYaw   VelocityAxis
	OrbitPitch VelocityAxis
	PanYaw     VelocityAxis
	PanPitch   VelocityAxis
	Zoom       VelocityAxis
}

func NewCameraMotion(fps int) *CameraMotion {
	return &CameraMotion{
		OrbitYaw:   NewVelocityAxis(fps),
		OrbitPitch: NewVelocityAxis(fps),
		PanYaw:     NewVelocityAxis(fps),
		PanPitch:   NewVelocityAxis(fps),
		Zoom:       NewVelocityAxis(fps),
	}
}

// Apply advances every axis one frame and moves the camera.
func (m *CameraMotion) Apply(cam *scene.Camera) {
	if yaw, pitch := m.OrbitYaw.Update(), m.OrbitPitch.Update(); yaw != 0 || pitch != 0 {
		cam.Orbit(yaw, pitch)
	}
	if yaw, pitch := m.PanYaw.Update(), m.PanPitch.Update(); yaw != 0 || pitch != 0 {
		cam.Pan(yaw, pitch)
	}
	if z := m.Zoom.Update(); z != 0 {
		cam.Zoom(z)
	}
}

// HUD renders a one-line status overlay above the scene.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD row directly with ANSI escapes.
func (h *HUD) Render(width int, sc *scene.Scene, show bool) {
	const (
		reset   = "\x1b[0m"
		bold    = "\x1b[1m"
		bgBlack = "\x1b[40m"
		fgGreen = "\x1b[92m"
		fgCyan  = "\x1b[96m"
	)

	fmt.Print("\x1b[1;1H\x1b[2K")
	if !show {
		return
	}

	fmt.Printf("\x1b[1;1H%s%s %.0f FPS %s", bgBlack, fgGreen, h.fps, reset)

	info := fmt.Sprintf("t=%d  %d bodies", sc.Time(), len(sc.Objects))
	col := width - len(info) - 2
	if col < 1 {
		col = 1
	}
	fmt.Printf("\x1b[1;%dH%s%s%s %s %s", col, bold, bgBlack, fgCyan, info, reset)
}

func run() error {
	var bgR, bgG, bgB uint8 = 51, 85, 85
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	fb.SetBackground(render.RGB(bgR, bgG, bgB))

	camera := scene.NewCamera(math3d.V3(0, 0, 25), math3d.Zero3())
	sc := scene.New(fb, camera)
	sc.Debug = *debugStart

	if *shipPath != "" {
		ship, err := models.Load(*shipPath)
		if err != nil {
			return fmt.Errorf("load ship model: %w", err)
		}
		sc.Ship = ship
	}

	hud := NewHUD()
	showHUD := true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	motion := NewCameraMotion(*targetFPS)
	const (
		orbitStep = 0.02
		panStep   = 0.015
		zoomStep  = 0.4
		flyStep   = 0.8
	)
	var snapshotWanted bool

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				fb.SetBackground(render.RGB(bgR, bgG, bgB))
				sc.Resize(fb)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left"):
					motion.OrbitYaw.Velocity = -orbitStep
				case ev.MatchString("right"):
					motion.OrbitYaw.Velocity = orbitStep
				case ev.MatchString("up"):
					motion.OrbitPitch.Velocity = -orbitStep
				case ev.MatchString("down"):
					motion.OrbitPitch.Velocity = orbitStep
				case ev.MatchString("a"):
					motion.PanYaw.Velocity = -panStep
				case ev.MatchString("d"):
					motion.PanYaw.Velocity = panStep
				case ev.MatchString("w"):
					motion.PanPitch.Velocity = panStep
				case ev.MatchString("s"):
					motion.PanPitch.Velocity = -panStep
				case ev.MatchString("n"):
					motion.Zoom.Velocity = zoomStep
				case ev.MatchString("m"):
					motion.Zoom.Velocity = -zoomStep
				case ev.MatchString("i"):
					camera.Move(0, 0, flyStep)
				case ev.MatchString("k"):
					camera.Move(0, 0, -flyStep)
				case ev.MatchString("j"):
					camera.Move(-flyStep, 0, 0)
				case ev.MatchString("l"):
					camera.Move(flyStep, 0, 0)
				case ev.MatchString("u"):
					camera.Move(0, -flyStep, 0)
				case ev.MatchString("o"):
					camera.Move(0, flyStep, 0)
				case ev.MatchString("b"):
					sc.Debug = !sc.Debug
				case ev.MatchString("v"):
					sc.ShowShip = !sc.ShowShip
				case ev.MatchString("p"):
					snapshotWanted = true
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				}
			}
		}
	}()

	// Main loop. Frames render at most once per interval; when the gate is
	// not yet open the iteration is skipped entirely and the scene clock
	// does not advance.
	frameInterval := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		if time.Since(lastFrame) < frameInterval {
			time.Sleep(time.Millisecond)
			continue
		}
		lastFrame = time.Now()

		motion.Apply(camera)
		sc.RenderFrame()

		termRenderer.Render(sc.Framebuffer())
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(width, sc, showHUD)

		if snapshotWanted {
			snapshotWanted = false
			path := fmt.Sprintf("%s/orrery-%d.png", *snapshots, sc.Time())
			if err := sc.Framebuffer().SavePNG(path); err != nil {
				fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
			}
		}
	}
}
