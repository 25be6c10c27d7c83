package binding

import (
	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// CheckBinding synchronizes a two-state control with a bool value.
type CheckBinding struct {
	Base[bool]
	convert BoolConvert
}

// NewCheckBinding creates an unconnected check binding.
func NewCheckBinding(data state.Readable[bool], mode Mode, convert BoolConvert) *CheckBinding {
	return &CheckBinding{Base: newBase("check", data, mode, state.EqualComparable[bool]), convert: convert}
}

// Connect attaches a CheckControl.
func (b *CheckBinding) Connect(scope *lifecycle.Scope, control any) *CheckBinding {
	view := mustControl[CheckControl]("check", control)
	ok := b.connect(scope, view, func(v bool) {
		want := b.convert.Apply(v)
		if view.Checked() != want {
			view.SetChecked(want)
		}
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnCheckedChanged(func(checked bool) {
		b.Write(b.convert.Apply(checked))
	}))
	if b.mode == OneWayToSource {
		b.Write(b.convert.Apply(view.Checked()))
	}
	return b
}

// BindCheck connects view to data.
func BindCheck(binder *Binder, view CheckControl, data state.Readable[bool], mode Mode, convert BoolConvert) *Binder {
	return binder.Add(NewCheckBinding(data, mode, convert).Connect(binder.RequireScope(), view))
}

// EnableBinding enables a control while the value is true.
type EnableBinding struct {
	Base[bool]
	convert BoolConvert
}

// NewEnableBinding creates an unconnected enable binding.
func NewEnableBinding(data state.Readable[bool], convert BoolConvert) *EnableBinding {
	return &EnableBinding{Base: newBase("enable", data, OneWay, state.EqualComparable[bool]), convert: convert}
}

// Connect attaches an EnableControl.
func (b *EnableBinding) Connect(scope *lifecycle.Scope, control any) *EnableBinding {
	view := mustControl[EnableControl]("enable", control)
	b.connect(scope, view, func(v bool) {
		setEnabled(view, b.convert.Apply(v))
	})
	return b
}

// BindEnable connects view to data.
func BindEnable(binder *Binder, view EnableControl, data state.Readable[bool], convert BoolConvert) *Binder {
	return binder.Add(NewEnableBinding(data, convert).Connect(binder.RequireScope(), view))
}

// VisibilityBinding shows a control while the value is true.
type VisibilityBinding struct {
	Base[bool]
	convert BoolConvert
}

// NewVisibilityBinding creates an unconnected visibility binding.
func NewVisibilityBinding(data state.Readable[bool], convert BoolConvert) *VisibilityBinding {
	return &VisibilityBinding{Base: newBase("visibility", data, OneWay, state.EqualComparable[bool]), convert: convert}
}

// Connect attaches a VisibleControl.
func (b *VisibilityBinding) Connect(scope *lifecycle.Scope, control any) *VisibilityBinding {
	view := mustControl[VisibleControl]("visibility", control)
	b.connect(scope, view, func(v bool) {
		setVisible(view, b.convert.Apply(v))
	})
	return b
}

// BindVisibility connects view to data.
func BindVisibility(binder *Binder, view VisibleControl, data state.Readable[bool], convert BoolConvert) *Binder {
	return binder.Add(NewVisibilityBinding(data, convert).Connect(binder.RequireScope(), view))
}

// MultiBoolBinding drives several controls from one bool value. Connect is
// not supported; use ConnectAll, which may be called more than once to add
// targets.
type MultiBoolBinding struct {
	Base[bool]
	convert BoolConvert
	assert  func(control any) any
	set     func(control any, v bool)
	targets []any
}

// NewMultiEnableBinding enables or disables every connected target.
func NewMultiEnableBinding(data state.Readable[bool], convert BoolConvert) *MultiBoolBinding {
	return &MultiBoolBinding{
		Base:    newBase("multi-enable", data, OneWay, state.EqualComparable[bool]),
		convert: convert,
		assert:  func(c any) any { return mustControl[EnableControl]("multi-enable", c) },
		set:     func(c any, v bool) { setEnabled(c.(EnableControl), v) },
	}
}

// NewMultiVisibilityBinding shows or hides every connected target.
func NewMultiVisibilityBinding(data state.Readable[bool], convert BoolConvert) *MultiBoolBinding {
	return &MultiBoolBinding{
		Base:    newBase("multi-visibility", data, OneWay, state.EqualComparable[bool]),
		convert: convert,
		assert:  func(c any) any { return mustControl[VisibleControl]("multi-visibility", c) },
		set:     func(c any, v bool) { setVisible(c.(VisibleControl), v) },
	}
}

// Connect always panics with ErrUseConnectAll.
func (b *MultiBoolBinding) Connect(scope *lifecycle.Scope, control any) {
	panic(wiringError(ErrUseConnectAll, "%s", b.kind))
}

// ConnectAll attaches targets and applies the current value to them.
func (b *MultiBoolBinding) ConnectAll(scope *lifecycle.Scope, controls ...any) *MultiBoolBinding {
	added := make([]any, 0, len(controls))
	for _, c := range controls {
		added = append(added, b.assert(c))
	}
	if b.disposed {
		return b
	}
	if !b.connected {
		b.targets = added
		if b.connect(scope, b.targets, b.apply) {
			b.OnDispose(func() { b.targets = nil })
		}
		return b
	}
	b.targets = append(b.targets, added...)
	v := b.convert.Apply(b.data.Get())
	for _, c := range added {
		b.set(c, v)
	}
	return b
}

// Targets reports the number of connected controls.
func (b *MultiBoolBinding) Targets() int {
	return len(b.targets)
}

func (b *MultiBoolBinding) apply(v bool) {
	v = b.convert.Apply(v)
	for _, c := range b.targets {
		b.set(c, v)
	}
}

func setEnabled(view EnableControl, v bool) {
	if view.Enabled() != v {
		view.SetEnabled(v)
	}
}

func setVisible(view VisibleControl, v bool) {
	if view.Visible() != v {
		view.SetVisible(v)
	}
}
