// Package statemachine implements a small finite state machine with guarded
// transitions and side-effect actions.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Several transitions may share a (state, event) pair:
// they are tried in registration order and the first one whose guards all
// pass wins, which is how branching on runtime data is expressed.
//
//	const (
//	    Validating = statemachine.StringState("validating")
//	    Building   = statemachine.StringState("building")
//	    Rejected   = statemachine.StringState("rejected")
//	    Validate   = statemachine.StringEvent("validate")
//	)
//
//	sm := statemachine.MustNew(Validating,
//	    statemachine.WithTransition(Validating, Building, Validate,
//	        statemachine.WithGuard(isValid)),
//	    statemachine.WithTransition(Validating, Rejected, Validate),
//	)
//	_ = sm.Fire(ctx, Validate, submission)
//
// Actions run after guards pass and before the state changes; an action error
// aborts the transition and leaves the machine where it was. Listeners
// registered with WithListener observe committed transitions.
//
// Fire reports *ErrNoTransitionAvailable when nothing is defined for the
// current state and event, and *ErrTransitionRejected when every candidate was
// vetoed by a guard. Match them with errors.As.
//
// SimpleStateMachine is safe for concurrent use.
package statemachine
