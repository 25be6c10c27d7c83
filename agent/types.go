package agent

import (
	"time"

	"github.com/odvcencio/furry-binder/runtime"
)

// Snapshot captures a structured view of the current UI state.
type Snapshot struct {
	Timestamp time.Time    `json:"timestamp"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Text      string       `json:"text,omitempty"`
	Widgets   []WidgetInfo `json:"widgets,omitempty"`
	FocusedID string       `json:"focused_id,omitempty"`
	Focused   *WidgetInfo  `json:"focused,omitempty"`
}

// WidgetInfo describes a widget in the UI tree in terms of the binding
// capabilities it implements.
type WidgetInfo struct {
	ID        string       `json:"id"`
	Kind      string       `json:"type"`
	Value     string       `json:"value,omitempty"`
	Checked   *bool        `json:"checked,omitempty"`
	Disabled  bool         `json:"disabled,omitempty"`
	Hidden    bool         `json:"hidden,omitempty"`
	Bounds    runtime.Rect `json:"bounds"`
	Children  []WidgetInfo `json:"children,omitempty"`
	Actions   []string     `json:"actions,omitempty"`
	Focusable bool         `json:"focusable,omitempty"`
	Focused   bool         `json:"focused,omitempty"`
}
