package stamp

// Surface is the window the host owns: the overlay's live frame and
// its platform-level toggles. stamp never creates or destroys a
// surface, it only reads the frame and writes new ones.
type Surface interface {
	// Frame returns the current window frame in screen coordinates.
	Frame() Rect

	// SetFrame moves and resizes the window.
	SetFrame(Rect)

	// SetVisible shows or hides the window.
	SetVisible(bool)

	// SetIgnoresEvents makes the window click-through when true.
	SetIgnoresEvents(bool)

	// Invalidate requests a repaint of the window's contents.
	Invalidate()
}

// Saver persists a configuration snapshot. Writes are best-effort:
// the overlay ignores the returned error beyond logging it.
type Saver interface {
	Save(Config) error
}

// Overlay coordinates the renderer, the interaction controller, and
// the host collaborators. One goroutine (the host event loop) owns it.
type Overlay struct {
	renderer   *Renderer
	controller *Controller
	surface    Surface
	saver      Saver

	cfg Config
}

// NewOverlay creates an overlay bound to a surface and a settings
// store. Either collaborator may be nil: with a nil surface pointer
// events are dropped, with a nil saver frames are never persisted.
func NewOverlay(r *Renderer, surface Surface, saver Saver, cfg Config) *Overlay {
	return &Overlay{
		renderer:   r,
		controller: NewController(),
		surface:    surface,
		saver:      saver,
		cfg:        cfg.Normalize(),
	}
}

// Config returns the overlay's current settings snapshot.
func (o *Overlay) Config() Config {
	return o.cfg
}

// SetConfig replaces the settings snapshot and requests a repaint.
// Lock state is forwarded to the surface as the click-through flag; a
// config that locks the overlay also discards any drag in progress, so
// a session started before a settings edit cannot keep moving the
// frame.
func (o *Overlay) SetConfig(cfg Config) {
	o.cfg = cfg.Normalize()
	if o.cfg.Locked {
		o.controller.Cancel()
	}
	if o.surface != nil {
		o.surface.SetIgnoresEvents(o.cfg.Locked)
		o.surface.Invalidate()
	}
}

// Paint satisfies a paint request: it renders the current settings
// against the surface's frame size. With no surface it returns an
// empty frame.
func (o *Overlay) Paint() Frame {
	if o.surface == nil {
		return Frame{Transform: Identity()}
	}
	return o.renderer.Render(o.cfg, o.surface.Frame().Size())
}

// PointerDown begins a drag against the surface's current frame.
// Without a live surface the event is dropped, not buffered.
func (o *Overlay) PointerDown(p Point) {
	if o.surface == nil {
		o.controller.Cancel()
		return
	}
	o.controller.PointerDown(p, o.surface.Frame(), o.cfg.Locked)
}

// PointerDrag applies the drag's intermediate frame to the live
// window. Intermediate frames are not persisted.
func (o *Overlay) PointerDrag(p Point) {
	if o.surface == nil {
		o.controller.Cancel()
		return
	}
	if frame, ok := o.controller.PointerDrag(p); ok {
		o.surface.SetFrame(frame)
	}
}

// PointerUp ends the drag, applies the final frame, and persists it
// fire-and-forget. A failed write is logged and otherwise tolerated;
// the frame survives in memory until the next successful write.
func (o *Overlay) PointerUp(p Point) {
	if o.surface == nil {
		o.controller.Cancel()
		return
	}
	frame, ok := o.controller.PointerUp(p)
	if !ok {
		return
	}
	o.surface.SetFrame(frame)
	o.cfg.Frame = &frame
	o.persist()
}

// Center moves the overlay to the middle of the given screen, using
// the default frame size when none is stored, and persists the result.
func (o *Overlay) Center(screen Size) {
	if o.surface == nil {
		return
	}
	size := Sz(DefaultFrameWidth, DefaultFrameHeight)
	if o.cfg.Frame != nil {
		size = o.cfg.Frame.Size()
	}
	frame := CenteredFrame(screen, size)
	o.surface.SetFrame(frame)
	o.cfg.Frame = &frame
	o.persist()
}

// SetLocked toggles lock mode: locked overlays ignore drags and pass
// clicks through to whatever is underneath.
func (o *Overlay) SetLocked(locked bool) {
	o.cfg.Locked = locked
	o.controller.Cancel()
	if o.surface != nil {
		o.surface.SetIgnoresEvents(locked)
	}
	o.persist()
}

// SetVisible shows or hides the overlay window.
func (o *Overlay) SetVisible(visible bool) {
	if o.surface != nil {
		o.surface.SetVisible(visible)
	}
}

// persist writes the current settings best-effort.
func (o *Overlay) persist() {
	if o.saver == nil {
		return
	}
	if err := o.saver.Save(o.cfg); err != nil {
		Logger().Warn("settings write failed", "error", err)
	}
}

// CenteredFrame returns a frame of the given size centered on a screen.
func CenteredFrame(screen Size, size Size) Rect {
	return Rect{
		X: (screen.W - size.W) / 2,
		Y: (screen.H - size.H) / 2,
		W: size.W,
		H: size.H,
	}
}

// CommandID identifies a control-surface command.
type CommandID int

// Control-surface commands, in menu order.
const (
	CmdToggleVisible CommandID = iota
	CmdToggleLock
	CmdCenter
	CmdOpenSettings
	CmdQuit
)

// Command is one entry of the control surface. The overlay exposes
// menu contents as data; ownership of any widget graph showing them
// lives entirely with the host.
type Command struct {
	ID    CommandID
	Title string
}

// Commands returns the control-surface entries for the current state.
// Titles reflect the toggles (e.g. "Unlock" while locked).
func (o *Overlay) Commands() []Command {
	lock := "Lock Overlay"
	if o.cfg.Locked {
		lock = "Unlock Overlay"
	}
	return []Command{
		{ID: CmdToggleVisible, Title: "Show/Hide Overlay"},
		{ID: CmdToggleLock, Title: lock},
		{ID: CmdCenter, Title: "Center on Screen"},
		{ID: CmdOpenSettings, Title: "Settings…"},
		{ID: CmdQuit, Title: "Quit"},
	}
}
