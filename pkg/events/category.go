package events

// Category classifies the hook type a WH_DEBUG invocation reports.
type Category int

const (
	Other Category = iota
	Mouse
	Keyboard
)

// Hook type codes delivered in the WH_DEBUG wParam.
const (
	whKeyboard = 2
	whMouse    = 7
)

// Classify maps the hook type about to be called to a Category.
func Classify(code uintptr) Category {
	switch code {
	case whMouse:
		return Mouse
	case whKeyboard:
		return Keyboard
	default:
		return Other
	}
}

// Loggable reports whether events of this category produce a record.
func (c Category) Loggable() bool {
	return c == Mouse || c == Keyboard
}

func (c Category) String() string {
	switch c {
	case Mouse:
		return "Mouse"
	case Keyboard:
		return "Keyboard"
	default:
		return "Other"
	}
}
