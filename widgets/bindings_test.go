package widgets

import (
	"slices"
	"testing"

	"github.com/odvcencio/furry-binder/binding"
	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

func TestBindings_EditTextRoundTrip(t *testing.T) {
	binder := binding.NewBinder(lifecycle.NewScope("form"))
	name := state.NewComparableSignal("")
	field := NewTextField()
	binding.BindEditText(binder, field, name, binding.TwoWay)

	field.Focus()
	field.Type("ann")
	if name.Get() != "ann" {
		t.Fatalf("expected typing to reach the data, got %q", name.Get())
	}
	name.Set("bob")
	if field.Text() != "bob" {
		t.Fatalf("expected data to reach the field, got %q", field.Text())
	}
	binder.Dispose()
	field.Type("!")
	if name.Get() != "bob" {
		t.Fatalf("expected no writes after dispose, got %q", name.Get())
	}
}

func TestBindings_CheckAndVisibility(t *testing.T) {
	binder := binding.NewBinder(lifecycle.NewScope("form"))
	done := state.NewComparableSignal(false)
	check := NewCheckbox("done")
	note := NewLabel("all done")
	binding.BindCheck(binder, check, done, binding.TwoWay, binding.Straight)
	binding.BindVisibility(binder, note, done, binding.Straight)

	if note.Visible() {
		t.Fatalf("expected note hidden while not done")
	}
	check.Toggle()
	if !done.Get() || !note.Visible() {
		t.Fatalf("expected toggle to update data and visibility")
	}
}

func TestBindings_SliderSnapsToStep(t *testing.T) {
	binder := binding.NewBinder(lifecycle.NewScope("form"))
	volume := state.NewComparableSignal(5.0)
	slider := NewSlider(0, 10, 2)
	binding.BindSlider(binder, slider, volume, binding.TwoWay)

	if slider.Value() != 6 {
		t.Fatalf("expected 5 snapped to 6, got %v", slider.Value())
	}
	volume.Set(42)
	if slider.Value() != 10 {
		t.Fatalf("expected clamp to 10, got %v", slider.Value())
	}
}

func TestBindings_RadioAndToggleGroups(t *testing.T) {
	binder := binding.NewBinder(lifecycle.NewScope("form"))
	resolver := binding.NewMapResolver[string]().Map(1, "low").Map(2, "high")

	priority := state.NewComparableSignal("low")
	radio := NewRadioGroup(GroupButton{ID: 1, Label: "low"}, GroupButton{ID: 2, Label: "high"})
	binding.BindRadioGroup(binder, radio, priority, resolver, binding.TwoWay)
	if !slices.Equal(radio.CheckedIDs(), []int{1}) {
		t.Fatalf("expected low checked, got %v", radio.CheckedIDs())
	}
	radio.Press(2)
	if priority.Get() != "high" {
		t.Fatalf("expected press to write high, got %q", priority.Get())
	}

	tags := state.NewSignal([]string{"high"})
	toggles := NewToggleGroup(GroupButton{ID: 1, Label: "low"}, GroupButton{ID: 2, Label: "high"})
	binding.BindToggleGroup(binder, toggles, tags, resolver, binding.TwoWay)
	toggles.Press(1)
	if got := tags.Get(); len(got) != 2 || !slices.Contains(got, "low") {
		t.Fatalf("expected both tags, got %v", got)
	}
}

func TestBindings_DropdownIgnoresUnknownLabel(t *testing.T) {
	binder := binding.NewBinder(lifecycle.NewScope("form"))
	color := state.NewComparableSignal("red")
	dd := NewDropdown()
	binding.BindDropdown(binder, dd, color, []string{"red", "green"}, binding.TwoWay)

	if dd.Text() != "red" || len(dd.Options()) != 2 {
		t.Fatalf("expected options and current label, got %q %v", dd.Text(), dd.Options())
	}
	dd.Choose("green")
	if color.Get() != "green" {
		t.Fatalf("expected green chosen, got %q", color.Get())
	}
	dd.Choose("mauve")
	if color.Get() != "green" {
		t.Fatalf("expected unknown label ignored, got %q", color.Get())
	}
}

func TestBindings_SelectAndMarkdown(t *testing.T) {
	binder := binding.NewBinder(lifecycle.NewScope("form"))
	size := state.NewComparableSignal(2)
	sel := NewSelect()
	binding.BindSelect(binder, sel, size, []int{1, 2, 3}, binding.TwoWay)
	if sel.Selected() != 1 {
		t.Fatalf("expected index 1, got %d", sel.Selected())
	}
	sel.Select(2)
	if size.Get() != 3 {
		t.Fatalf("expected 3, got %d", size.Get())
	}

	help := state.NewSignal("**Swipe** to delete")
	label := NewLabel("")
	binding.BindMarkdown(binder, label, help)
	if label.Text() != "Swipe to delete" {
		t.Fatalf("expected plain text, got %q", label.Text())
	}
}
