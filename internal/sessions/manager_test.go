package sessions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DocumentationStartsUndefined(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Create()

	doc, ok := s.Documentation()

	assert.False(t, ok)
	assert.Empty(t, doc)
}

func TestSession_SetDocumentationOverwrites(t *testing.T) {
	s := NewManager(time.Hour).Create()

	s.SetDocumentation("first")
	s.SetDocumentation("second")

	doc, ok := s.Documentation()
	require.True(t, ok)
	assert.Equal(t, "second", doc)
}

func TestSession_EmptyDocumentationIsDefined(t *testing.T) {
	s := NewManager(time.Hour).Create()

	s.SetDocumentation("")

	_, ok := s.Documentation()
	assert.True(t, ok)
}

func TestManager_GetAndResolve(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Create()

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	resolved, created := m.Resolve(s.ID)
	assert.False(t, created)
	assert.Same(t, s, resolved)

	fresh, created := m.Resolve("")
	assert.True(t, created)
	assert.NotEqual(t, s.ID, fresh.ID)

	_, created = m.Resolve("not-a-uuid")
	assert.True(t, created)

	assert.Equal(t, 3, m.Count())
}

func TestManager_GetErrors(t *testing.T) {
	m := NewManager(time.Hour)

	_, err := m.Get("garbage")
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = m.Get("6f1c3c1e-8a5d-4a8e-9a53-0d3c0b6f9c11")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestManager_Expiry(t *testing.T) {
	m := NewManager(time.Minute)
	now := time.Now()
	m.now = func() time.Time { return now }

	s := m.Create()
	now = now.Add(2 * time.Minute)

	_, err := m.Get(s.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 0, m.Count())
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(0)
	s := m.Create()

	m.Delete(s.ID)

	assert.Equal(t, 0, m.Count())
	assert.Equal(t, DefaultTTL, m.ttl)
}

func TestManager_RunStopsWithContext(t *testing.T) {
	m := NewManager(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, time.Millisecond) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := NewManager(time.Hour).Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetDocumentation("doc")
		}()
		go func() {
			defer wg.Done()
			s.Documentation()
		}()
	}
	wg.Wait()

	doc, ok := s.Documentation()
	assert.True(t, ok)
	assert.Equal(t, "doc", doc)
}
