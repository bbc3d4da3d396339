package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine is a thread-safe in-memory state machine.
// Transitions are indexed as [fromState][event][]Transition; several entries
// for the same pair are tried in registration order, so guards can branch.
type SimpleStateMachine struct {
	initialState State
	currentState State
	path         []State
	transitions  map[string]map[string][]Transition
	listeners    []Listener
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		path:         []State{initialState},
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

// Path returns every state visited since creation or the last Reset,
// starting with the initial state.
func (sm *SimpleStateMachine) Path() []State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]State, len(sm.path))
	copy(out, sm.path)
	return out
}

func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		sm.transitions[from.Name()] = byEvent
	}

	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()

	from := sm.currentState
	t, err := sm.selectTransition(ctx, event, data)
	if err != nil {
		sm.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event, data); err != nil {
			sm.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	sm.path = append(sm.path, t.To)
	listeners := sm.listeners
	sm.mu.Unlock()

	for _, l := range listeners {
		l(ctx, from, t.To, event)
	}
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, err := sm.selectTransition(ctx, event, data)
	return err == nil
}

func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	sm.path = []State{sm.initialState}
	return nil
}

// selectTransition returns the first transition whose guards all pass.
// Callers must hold the lock.
func (sm *SimpleStateMachine) selectTransition(ctx context.Context, event Event, data any) (*Transition, error) {
	stateName := sm.currentState.Name()
	eventName := event.Name()

	candidates := sm.transitions[stateName][eventName]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(stateName, eventName)
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, sm.currentState, event, data) {
			return &candidates[i], nil
		}
	}

	return nil, NewErrTransitionRejected(stateName, eventName)
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if guard != nil && !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
