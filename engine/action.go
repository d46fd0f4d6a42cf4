package engine

import (
	"go.uber.org/zap"

	"github.com/wippyai/fission"
	"github.com/wippyai/fission/errors"
)

// Action is one analysis pass over a function. Perform returns the number of
// changes it made, or a negative value when it stopped at a breakpoint.
type Action interface {
	Name() string
	Perform(fd *Function) (int, error)
}

// ActionGroup runs actions in order. After a breakpoint the remaining
// actions still run on whatever was recovered, and the group reports the
// breakpoint with a negative result.
type ActionGroup struct {
	name    string
	actions []Action
}

// NewActionGroup builds a named pipeline.
func NewActionGroup(name string, actions ...Action) *ActionGroup {
	return &ActionGroup{name: name, actions: actions}
}

func (g *ActionGroup) Name() string { return g.name }

func (g *ActionGroup) Perform(fd *Function) (int, error) {
	total := 0
	stopped := false
	for _, a := range g.actions {
		res, err := a.Perform(fd)
		if err != nil {
			return 0, errors.New(errors.PhaseDecompile, errors.KindEngine).
				Path(g.name, a.Name()).
				Cause(err).
				Detail("action failed on %s", fd.Name).
				Build()
		}
		if res < 0 {
			stopped = true
			Logger().Debug("action breakpoint",
				zap.String("group", g.name),
				zap.String("action", a.Name()),
				zap.String("function", fd.Name))
			continue
		}
		total += res
	}
	if stopped {
		return -1, nil
	}
	return total, nil
}

// actionFlow follows control flow from the entry point, decoding every
// reachable instruction inside the image.
type actionFlow struct {
	maxSteps        int
	maxInstructions int
}

func (a *actionFlow) Name() string { return "flow" }

func (a *actionFlow) Perform(fd *Function) (int, error) {
	bounded, _ := fd.tr.Image().(fission.Bounded)
	work := []uint64{fd.Entry}
	steps := 0

	for len(work) > 0 {
		addr := work[len(work)-1]
		work = work[:len(work)-1]

		if _, seen := fd.insts[addr]; seen {
			continue
		}
		if _, seen := fd.bad[addr]; seen {
			continue
		}
		if bounded != nil && !bounded.Contains(addr) {
			fd.exits[addr] = true
			continue
		}
		if steps >= a.maxSteps || len(fd.insts) >= a.maxInstructions {
			fd.warnf("flow recovery stopped at %#x: analysis budget exhausted", addr)
			return -1, nil
		}
		steps++

		inst, err := fd.tr.Instruction(addr)
		if err != nil {
			fd.bad[addr] = err
			fd.warnf("bad instruction data at %#x", addr)
			continue
		}
		fd.insts[addr] = inst

		if inst.HasTarget {
			switch inst.Flow {
			case FlowJump, FlowBranch:
				work = append(work, inst.Target)
			case FlowCall:
				fd.callees[inst.Target] = true
			}
		}
		// Pushed last so straight-line code is followed first.
		if inst.Flow.FallsThrough() && inst.End() > inst.Address {
			work = append(work, inst.End())
		}
	}
	return len(fd.insts), nil
}

// actionBlocks partitions the recovered instructions into basic blocks.
type actionBlocks struct{}

func (actionBlocks) Name() string { return "blocks" }

func (actionBlocks) Perform(fd *Function) (int, error) {
	addrs := fd.sortedAddrs()
	leaders := map[uint64]bool{fd.Entry: true}
	for _, a := range addrs {
		inst := fd.insts[a]
		if inst.HasTarget && (inst.Flow == FlowJump || inst.Flow == FlowBranch) {
			leaders[inst.Target] = true
		}
		switch inst.Flow {
		case FlowNone, FlowCall, FlowIndirectCall:
		default:
			leaders[inst.End()] = true
		}
	}

	var cur *Block
	for _, a := range addrs {
		inst := fd.insts[a]
		if cur == nil || leaders[a] || cur.End != a {
			cur = &Block{ID: a, Start: a, End: a}
			fd.blocks = append(fd.blocks, cur)
		}
		cur.Instructions = append(cur.Instructions, inst)
		cur.End = inst.End()
	}

	for _, b := range fd.blocks {
		last := b.Instructions[len(b.Instructions)-1]
		if last.HasTarget && (last.Flow == FlowJump || last.Flow == FlowBranch) {
			b.Succs = append(b.Succs, last.Target)
		}
		if last.Flow.FallsThrough() {
			b.Succs = append(b.Succs, last.End())
		}
	}
	return len(fd.blocks), nil
}

// actionLift translates each block into C-like statements.
type actionLift struct {
	lift *lifter
}

func (a *actionLift) Name() string { return "lift" }

func (a *actionLift) Perform(fd *Function) (int, error) {
	labels := make(map[uint64]bool, len(fd.blocks))
	for _, b := range fd.blocks {
		labels[b.Start] = true
	}

	n := 0
	for i, b := range fd.blocks {
		fd.body = append(fd.body, statement{label: b.Start, isLabel: true})
		for _, inst := range b.Instructions {
			fd.body = append(fd.body, a.lift.statements(inst, labels)...)
			n++
		}

		last := b.Instructions[len(b.Instructions)-1]
		if !last.Flow.FallsThrough() {
			continue
		}
		next := last.End()
		switch {
		case fd.bad[next] != nil:
			fd.body = append(fd.body, statement{text: "halt_baddata();", addr: next})
		case fd.exits[next]:
			fd.body = append(fd.body, statement{text: "/* WARNING: Control flow leaves the image */", addr: next})
		case i+1 < len(fd.blocks) && fd.blocks[i+1].Start == next:
		case labels[next]:
			fd.body = append(fd.body, statement{text: "goto " + labelName(next) + ";", addr: next})
		default:
			fd.body = append(fd.body, statement{text: "/* WARNING: Control flow not recovered */", addr: next})
		}
	}
	return n, nil
}
