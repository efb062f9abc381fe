package dom

// Event is passed to listeners by Element.Dispatch.
type Event struct {
	Type   string
	Target *Element
	Detail any
}

// Listener handlers may be func(), func(*Event) or func(any). Handlers
// of any other type are stored but never invoked.
type listener struct {
	event   string
	handler any
}

func invoke(handler any, ev *Event) bool {
	switch h := handler.(type) {
	case func():
		h()
	case func(*Event):
		h(ev)
	case func(any):
		h(ev)
	default:
		return false
	}
	return true
}
