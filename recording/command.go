package recording

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/runrig-coop/farm-flow-board/canvas"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSetSize CommandType = iota
	CmdSave
	CmdRestore
	CmdTranslate
	CmdResetTransform
	CmdClip

	// Drawing commands
	CmdClearRect
	CmdFillRect
	CmdStrokeRect
	CmdBeginPath
	CmdMoveTo
	CmdLineTo
	CmdArc
	CmdClosePath
	CmdFill
	CmdStroke
	CmdFillText

	// Style commands
	CmdSetFillStyle
	CmdSetStrokeStyle
	CmdSetLineWidth
	CmdSetFont
	CmdSetTextAlign
	CmdSetShadow
)

var commandTypeNames = [...]string{
	CmdSetSize:        "SetSize",
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdTranslate:      "Translate",
	CmdResetTransform: "ResetTransform",
	CmdClip:           "Clip",
	CmdClearRect:      "ClearRect",
	CmdFillRect:       "FillRect",
	CmdStrokeRect:     "StrokeRect",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdArc:            "Arc",
	CmdClosePath:      "ClosePath",
	CmdFill:           "Fill",
	CmdStroke:         "Stroke",
	CmdFillText:       "FillText",
	CmdSetFillStyle:   "SetFillStyle",
	CmdSetStrokeStyle: "SetStrokeStyle",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetFont:        "SetFont",
	CmdSetTextAlign:   "SetTextAlign",
	CmdSetShadow:      "SetShadow",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded Surface call.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
	// Apply performs the call on s.
	Apply(s canvas.Surface)
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// --------------------------------------------------------------------------
// State commands
// --------------------------------------------------------------------------

// SetSizeCommand resizes the surface.
type SetSizeCommand struct {
	Width, Height int
}

func (SetSizeCommand) Type() CommandType        { return CmdSetSize }
func (c SetSizeCommand) Apply(s canvas.Surface) { s.SetSize(c.Width, c.Height) }

// SaveCommand pushes the drawing state.
type SaveCommand struct{}

func (SaveCommand) Type() CommandType      { return CmdSave }
func (SaveCommand) Apply(s canvas.Surface) { s.Save() }

// RestoreCommand pops the drawing state.
type RestoreCommand struct{}

func (RestoreCommand) Type() CommandType      { return CmdRestore }
func (RestoreCommand) Apply(s canvas.Surface) { s.Restore() }

// TranslateCommand shifts the coordinate origin.
type TranslateCommand struct {
	X, Y float64
}

func (TranslateCommand) Type() CommandType        { return CmdTranslate }
func (c TranslateCommand) Apply(s canvas.Surface) { s.Translate(c.X, c.Y) }

// ResetTransformCommand restores the identity transform.
type ResetTransformCommand struct{}

func (ResetTransformCommand) Type() CommandType      { return CmdResetTransform }
func (ResetTransformCommand) Apply(s canvas.Surface) { s.ResetTransform() }

// ClipCommand intersects the clip with the current path.
type ClipCommand struct{}

func (ClipCommand) Type() CommandType      { return CmdClip }
func (ClipCommand) Apply(s canvas.Surface) { s.Clip() }

// --------------------------------------------------------------------------
// Drawing commands
// --------------------------------------------------------------------------

// ClearRectCommand clears a rectangle to transparent.
type ClearRectCommand struct {
	Rect Rect
}

func (ClearRectCommand) Type() CommandType { return CmdClearRect }
func (c ClearRectCommand) Apply(s canvas.Surface) {
	s.ClearRect(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
}

// FillRectCommand fills a rectangle with the fill style.
type FillRectCommand struct {
	Rect Rect
}

func (FillRectCommand) Type() CommandType { return CmdFillRect }
func (c FillRectCommand) Apply(s canvas.Surface) {
	s.FillRect(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
}

// StrokeRectCommand outlines a rectangle with the stroke style.
type StrokeRectCommand struct {
	Rect Rect
}

func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }
func (c StrokeRectCommand) Apply(s canvas.Surface) {
	s.StrokeRect(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
}

// BeginPathCommand starts a new path.
type BeginPathCommand struct{}

func (BeginPathCommand) Type() CommandType      { return CmdBeginPath }
func (BeginPathCommand) Apply(s canvas.Surface) { s.BeginPath() }

// MoveToCommand starts a subpath.
type MoveToCommand struct {
	X, Y float64
}

func (MoveToCommand) Type() CommandType        { return CmdMoveTo }
func (c MoveToCommand) Apply(s canvas.Surface) { s.MoveTo(c.X, c.Y) }

// LineToCommand adds a line segment.
type LineToCommand struct {
	X, Y float64
}

func (LineToCommand) Type() CommandType        { return CmdLineTo }
func (c LineToCommand) Apply(s canvas.Surface) { s.LineTo(c.X, c.Y) }

// ArcCommand adds a circular arc.
type ArcCommand struct {
	X, Y, Radius, Start, End float64
}

func (ArcCommand) Type() CommandType { return CmdArc }
func (c ArcCommand) Apply(s canvas.Surface) {
	s.Arc(c.X, c.Y, c.Radius, c.Start, c.End)
}

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

func (ClosePathCommand) Type() CommandType      { return CmdClosePath }
func (ClosePathCommand) Apply(s canvas.Surface) { s.ClosePath() }

// FillCommand fills the current path.
type FillCommand struct{}

func (FillCommand) Type() CommandType      { return CmdFill }
func (FillCommand) Apply(s canvas.Surface) { s.Fill() }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

func (StrokeCommand) Type() CommandType      { return CmdStroke }
func (StrokeCommand) Apply(s canvas.Surface) { s.Stroke() }

// FillTextCommand draws text at a baseline position.
type FillTextCommand struct {
	Text string
	X, Y float64
}

func (FillTextCommand) Type() CommandType        { return CmdFillText }
func (c FillTextCommand) Apply(s canvas.Surface) { s.FillText(c.Text, c.X, c.Y) }

// --------------------------------------------------------------------------
// Style commands
// --------------------------------------------------------------------------

// SetFillStyleCommand sets the fill color.
type SetFillStyleCommand struct {
	Color gg.RGBA
}

func (SetFillStyleCommand) Type() CommandType        { return CmdSetFillStyle }
func (c SetFillStyleCommand) Apply(s canvas.Surface) { s.SetFillStyle(c.Color) }

// SetStrokeStyleCommand sets the stroke color.
type SetStrokeStyleCommand struct {
	Color gg.RGBA
}

func (SetStrokeStyleCommand) Type() CommandType        { return CmdSetStrokeStyle }
func (c SetStrokeStyleCommand) Apply(s canvas.Surface) { s.SetStrokeStyle(c.Color) }

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

func (SetLineWidthCommand) Type() CommandType        { return CmdSetLineWidth }
func (c SetLineWidthCommand) Apply(s canvas.Surface) { s.SetLineWidth(c.Width) }

// SetFontCommand sets the text font.
type SetFontCommand struct {
	Font canvas.Font
}

func (SetFontCommand) Type() CommandType        { return CmdSetFont }
func (c SetFontCommand) Apply(s canvas.Surface) { s.SetFont(c.Font) }

// SetTextAlignCommand sets horizontal text alignment.
type SetTextAlignCommand struct {
	Align canvas.TextAlign
}

func (SetTextAlignCommand) Type() CommandType        { return CmdSetTextAlign }
func (c SetTextAlignCommand) Apply(s canvas.Surface) { s.SetTextAlign(c.Align) }

// SetShadowCommand sets the drop shadow.
type SetShadowCommand struct {
	Shadow canvas.Shadow
}

func (SetShadowCommand) Type() CommandType        { return CmdSetShadow }
func (c SetShadowCommand) Apply(s canvas.Surface) { s.SetShadow(c.Shadow) }
