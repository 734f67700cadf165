package physics

import "sync"

// integrate advances every body, chunked across workers when enabled.
// Integration touches only per-body state so the chunks never overlap.
func (w *World) integrate(dt float32) {
	if w.workers <= 1 || len(w.bodies) < w.workers*8 {
		for _, b := range w.bodies {
			b.Integrate(dt, w.Gravity)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (len(w.bodies) + w.workers - 1) / w.workers
	for start := 0; start < len(w.bodies); start += chunk {
		end := start + chunk
		if end > len(w.bodies) {
			end = len(w.bodies)
		}
		wg.Add(1)
		go func(part []*Body) {
			defer wg.Done()
			for _, b := range part {
				b.Integrate(dt, w.Gravity)
			}
		}(w.bodies[start:end])
	}
	wg.Wait()
}

// detectPairs runs the narrow phase over the candidate pairs and returns the
// contacts found. Detection is read-only on body state, so it parallelizes;
// the caller resolves the contacts sequentially afterwards.
func (w *World) detectPairs(pairs []Pair) []Contact {
	if w.workers <= 1 || len(pairs) < w.workers*8 {
		var contacts []Contact
		for _, p := range pairs {
			w.counters.ChecksAttempted++
			if c, ok := DetectContact(p.A, p.B); ok {
				contacts = append(contacts, c)
			}
		}
		w.counters.Contacts = len(contacts)
		return contacts
	}

	var wg sync.WaitGroup
	chunk := (len(pairs) + w.workers - 1) / w.workers
	parts := make([][]Contact, 0, w.workers)
	for start := 0; start < len(pairs); start += chunk {
		end := start + chunk
		if end > len(pairs) {
			end = len(pairs)
		}
		out := make([]Contact, 0, end-start)
		parts = append(parts, out)
		idx := len(parts) - 1
		wg.Add(1)
		go func(part []Pair) {
			defer wg.Done()
			local := parts[idx][:0]
			for _, p := range part {
				if c, ok := DetectContact(p.A, p.B); ok {
					local = append(local, c)
				}
			}
			parts[idx] = local
		}(pairs[start:end])
	}
	wg.Wait()

	var contacts []Contact
	for _, part := range parts {
		contacts = append(contacts, part...)
	}
	w.counters.ChecksAttempted += len(pairs)
	w.counters.Contacts = len(contacts)
	return contacts
}
