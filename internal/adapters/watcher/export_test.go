package watcher

// Watching reports whether the watcher holds an fsnotify handle.
func (w *Watcher) Watching() bool {
	return w.fsWatcher != nil
}
