package main

import "log"

// drainChanges empties changes without blocking and reports whether any
// shader file changed. A closed channel is returned as nil so later frames
// skip it.
func drainChanges(changes <-chan string) (bool, <-chan string) {
	changed := false
	for {
		select {
		case path, ok := <-changes:
			if !ok {
				return changed, nil
			}
			log.Printf("Shader changed: %s", path)
			changed = true
		default:
			return changed, changes
		}
	}
}
