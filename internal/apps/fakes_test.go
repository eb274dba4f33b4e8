package apps

import (
	"errors"
	"sync"
)

type spawnCall struct {
	program string
	args    []string
}

// fakeSpawner records spawns and hands out children the test completes.
type fakeSpawner struct {
	mu       sync.Mutex
	calls    []spawnCall
	children []*Child
	err      error
}

func (f *fakeSpawner) Spawn(program string, args ...string) (*Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, spawnCall{program: program, args: args})
	if f.err != nil {
		return nil, f.err
	}
	c := NewChild(program, args...)
	f.children = append(f.children, c)
	return c, nil
}

func (f *fakeSpawner) last() *Child {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.children[len(f.children)-1]
}

type fakeConfirm struct {
	answer bool
	err    error
	titles []string
	defs   []bool
}

func (f *fakeConfirm) Confirm(title string, def bool) (bool, error) {
	f.titles = append(f.titles, title)
	f.defs = append(f.defs, def)
	return f.answer, f.err
}

var errBoom = errors.New("boom")

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
