package shader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports the paths of shader files that were written or replaced. The
// directories holding the files are watched, since editors often save by
// renaming a temporary file over the original. The channel is closed when ctx
// is done.
//
// Nothing here touches GL: the receiver is expected to call Program.Reload
// from the thread that owns the context.
func Watch(ctx context.Context, paths ...string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}

	wanted := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		wanted[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	changed := make(chan string, len(paths))
	go func() {
		defer close(changed)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil {
					continue
				}
				if _, ok := wanted[abs]; !ok {
					continue
				}
				// drop the event when a reload is already pending for this frame
				select {
				case changed <- abs:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Shader watcher error: %v", err)
			}
		}
	}()
	return changed, nil
}
