package router

// Router maps paths to screens and owns the navigation stack.
type Router[T any] struct {
	screens map[string]T
	root    string
	stack   *Stack[T]
}

// New creates a new Router whose stack bottom is the screen registered at root.
func New[T any](root string) *Router[T] {
	return &Router[T]{
		screens: make(map[string]T),
		root:    root,
		stack:   NewStack[T](),
	}
}

// Register stores a screen under path, replacing any previous one.
// Registering the root path resets the stack to that screen alone.
func (r *Router[T]) Register(path string, screen T) *Router[T] {
	r.screens[path] = screen
	if path == r.root {
		r.stack.Clear()
		r.stack.Push(path, screen)
	}
	return r
}

// Lookup returns the screen registered under path.
func (r *Router[T]) Lookup(path string) (T, bool) {
	screen, ok := r.screens[path]
	return screen, ok
}

// Open pushes the screen registered under path.
// Returns false and leaves the stack unchanged if path is unknown.
func (r *Router[T]) Open(path string) bool {
	screen, ok := r.screens[path]
	if !ok {
		return false
	}
	r.stack.Push(path, screen)
	return true
}

// Back pops the top entry and returns it.
// Returns nil when only the root remains.
func (r *Router[T]) Back() *StackEntry[T] {
	if r.stack.Len() <= 1 {
		return nil
	}
	return r.stack.Pop()
}

// Current returns the top of the stack, or nil before the root is registered.
func (r *Router[T]) Current() *StackEntry[T] {
	return r.stack.Peek()
}

// HasRoot reports whether a root screen has been registered.
func (r *Router[T]) HasRoot() bool {
	return !r.stack.IsEmpty()
}

// Root returns the root path.
func (r *Router[T]) Root() string {
	return r.root
}

// Paths returns the registered paths in no particular order.
func (r *Router[T]) Paths() []string {
	paths := make([]string, 0, len(r.screens))
	for p := range r.screens {
		paths = append(paths, p)
	}
	return paths
}

// Stack returns the navigation stack.
func (r *Router[T]) Stack() *Stack[T] {
	return r.stack
}
