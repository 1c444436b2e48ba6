// refcount.go: explicit strong/weak shared ownership.
//
// spec.md §3/§9 requires that struct instances, their scopes and the
// enclosing scope chain form a deliberate cycle (instance -> scope -> "this"
// -> instance) broken only by making the scope's parent link and the
// instance's self-reference non-owning, and that a struct's destructor fire
// deterministically when its last strong reference drops. Go's GC makes no
// promise about when (or whether) that happens, so ownership here is tracked
// by hand with a small strong/weak pair modeled on the original's
// shared_ptr/weak_ptr split (original_source/include/AST/Scope.hpp).
package wisp

import "sync/atomic"

type refCounted struct {
	count   int64
	onZero  func()
	dropped int32
}

func newRefCounted(onZero func()) *refCounted {
	return &refCounted{count: 1, onZero: onZero}
}

func (r *refCounted) retain() {
	atomic.AddInt64(&r.count, 1)
}

func (r *refCounted) release() {
	n := atomic.AddInt64(&r.count, -1)
	if n == 0 && atomic.CompareAndSwapInt32(&r.dropped, 0, 1) {
		if r.onZero != nil {
			r.onZero()
		}
	}
}

func (r *refCounted) alive() bool {
	return atomic.LoadInt64(&r.count) > 0
}

// Strong is an owning handle to a *StructInstance.
type Strong struct {
	inst *StructInstance
	rc   *refCounted
}

func newStrong(inst *StructInstance) Strong {
	inst.rc = newRefCounted(inst.destroy)
	return Strong{inst: inst, rc: inst.rc}
}

func (s Strong) Weak() Weak {
	return Weak{inst: s.inst, rc: s.rc}
}

func (s Strong) Retain() Strong {
	s.rc.retain()
	return s
}

func (s Strong) Release() {
	s.rc.release()
}

func (s Strong) Instance() *StructInstance {
	return s.inst
}

// Weak is a non-owning handle; Lock succeeds only while some Strong handle
// to the same instance is still alive.
type Weak struct {
	inst *StructInstance
	rc   *refCounted
}

func (w Weak) Lock() (*StructInstance, bool) {
	if w.rc == nil || !w.rc.alive() {
		return nil, false
	}
	return w.inst, true
}
