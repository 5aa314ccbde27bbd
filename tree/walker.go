package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidFilter is thrown if a pipeline filter stage is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is thrown if a client already called Promise(), but
// tried to re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// Maximum number of result nodes buffered between two filter stages.
const pipelineBufferLen = 128

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria.
//
// Chained filter calls assemble a small pipeline of stages; every stage
// runs in a goroutine of its own, reading nodes from its predecessor and
// emitting nodes to its successor. You may think of the set of operations
// to form a small Domain Specific Language (DSL), similar in concept to
// JQuery. A typical usage looks like this:
//
//    w := tree.NewWalker(node)
//    future := w.DescendentsWith(predicate).Promise()
//    nodes, err := future()
//
// ATTENTION: Clients must call Promise() as the final link of the
// DSL expression chain, even if they do not expect the expression to
// return a non-empty set of nodes. Firstly, they need to check for errors,
// and secondly without fetching the (possibly empty) result set by calling
// the promise, the Walker may leak goroutines.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	stages    []stage[T] // pipeline of filter stages to perform work on tree nodes
	defunct   error      // sticky error from assembling the pipeline
	promising bool       // client has called Promise()
}

// A stage reads nodes from its predecessor and emits result nodes to
// its successor. Stages run concurrently.
type stage[T comparable] struct {
	name string
	task func(node *Node[T], emit func(*Node[T])) error
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-pipeline of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial}
}

func (w *Walker[T]) appendFilter(name string, task func(*Node[T], func(*Node[T])) error) *Walker[T] {
	if w.promising {
		// misuse flows through the defunct error, like a nil predicate does,
		// and surfaces at the next Promise
		tracer().Errorf(ErrNoMoreFiltersAccepted.Error())
		if w.defunct == nil {
			w.defunct = ErrNoMoreFiltersAccepted
		}
		return w
	}
	w.stages = append(w.stages, stage[T]{name: name, task: task})
	return w
}

// Promise is a future synchronisation point.
// Walkers perform their filter stages asynchronously. Clients will not
// receive the resulting node list immediately, but rather get handed a
// Promise. Clients will then—any time after they received the Promise—call
// the Promise (which is of function type) to receive a slice of nodes and
// a possible error value. Calling the Promise will block until all
// stages of the pipeline have finished, i.e. it is a synchronization point.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.promising = true // will block calls to establish new filters
	errch := make(chan error, pipelineBufferLen)
	in := make(chan *Node[T], 1)
	in <- w.initial
	close(in)
	results := in
	for _, st := range w.stages {
		out := make(chan *Node[T], pipelineBufferLen)
		go func(st stage[T], in <-chan *Node[T], out chan<- *Node[T]) {
			defer close(out)
			for node := range in {
				err := st.task(node, func(n *Node[T]) { out <- n })
				if err != nil {
					tracer().Debugf("filter %s returned error: %v", st.name, err)
					select { // keep early errors, drop overflow
					case errch <- err:
					default:
					}
				}
			}
		}(st, results, out)
		results = out
	}
	signal := make(chan struct{})
	var selection []*Node[T]
	var lasterror error
	go func() {
		defer close(signal)
		for node := range results {
			selection = append(selection, node)
		}
		// all stages have terminated once the last output channel is closed
		close(errch)
		for err := range errch {
			lasterror = err
		}
	}()
	return func() ([]*Node[T], error) {
		<-signal
		if w.defunct != nil {
			return selection, w.defunct
		}
		return selection, lasterror
	}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various Walker functions to
// collect a selection of nodes. A predicate returns the node under
// test if it matched, nil otherwise.
type Predicate[T comparable] func(test *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) (*Node[T], error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent returns the parent node.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	return w.appendFilter("parent", func(node *Node[T], emit func(*Node[T])) error {
		if p := node.Parent(); p != nil {
			emit(p)
		}
		return nil
	})
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.defunct = ErrInvalidFilter
		return w
	}
	return w.appendFilter("ancestor-with", func(node *Node[T], emit func(*Node[T])) error {
		for anc := node.Parent(); anc != nil; anc = anc.Parent() {
			match, err := predicate(anc)
			if err != nil {
				return err
			}
			if match != nil {
				emit(match)
				return nil
			}
		}
		return nil // no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.defunct = ErrInvalidFilter
		return w
	}
	return w.appendFilter("descendents-with", func(node *Node[T], emit func(*Node[T])) error {
		return descendents(node, predicate, emit)
	})
}

// descendents walks the subtree below node in depth-first document order.
// An error from the predicate aborts descending that branch.
func descendents[T comparable](node *Node[T], predicate Predicate[T], emit func(*Node[T])) error {
	var lasterror error
	for _, ch := range node.Children() {
		match, err := predicate(ch)
		if err != nil {
			lasterror = err
			continue
		}
		if match != nil {
			emit(match)
		}
		if err := descendents(ch, predicate, emit); err != nil {
			lasterror = err
		}
	}
	return lasterror
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided predicate on each node of the selection.
// The predicate should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		w.defunct = ErrInvalidFilter
		return w
	}
	return w.appendFilter("filter", func(node *Node[T], emit func(*Node[T])) error {
		match, err := f(node)
		if err != nil {
			return err
		}
		if match != nil {
			emit(match)
		}
		return nil
	})
}
