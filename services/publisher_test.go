package services

// recordingHub captures published events so tests can assert on fan-out
// behavior without a websocket server.
type recordingHub struct {
	events   []string
	payloads []any
}

func (h *recordingHub) Publish(event string, payload any) {
	h.events = append(h.events, event)
	h.payloads = append(h.payloads, payload)
}
