package takeoff

import (
	"fmt"
	"math"

	"kantidad/internal/domain/entities"
)

// RunInput is the full project snapshot the structural takeoff consumes.
// The run is stateless: everything comes in as parameters, everything goes
// out as a value.

type RunInput struct {
	Instances []entities.ElementInstance
	Templates []entities.ElementTemplate
	Levels    []entities.Level
	GridX     []entities.GridLine
	GridY     []entities.GridLine
	Settings  entities.Settings
}

// RunOutput is always a best-effort partial result: errors and warnings are
// accumulated, never thrown, and never abort the batch.

type RunOutput struct {
	Lines    []entities.TakeoffLine
	Errors   []string
	Warnings []string
	Summary  entities.TakeoffSummary
}

// Orchestrator iterates element instances, dispatches by template type and
// collects lines, errors, warnings and an incrementally accumulated summary.

type Orchestrator struct {
	geometry  *GeometryEngine
	levels    *LevelResolver
	templates map[string]entities.ElementTemplate
	settings  entities.Settings
	factory   *LineFactory

	out RunOutput
}

// RunStructuralTakeoff executes one full structural takeoff pass.
func RunStructuralTakeoff(input RunInput) RunOutput {
	grids := NewGridResolver(input.GridX, input.GridY)
	levels := NewLevelResolver(input.Levels)

	o := &Orchestrator{
		geometry:  NewGeometryEngine(grids, levels),
		levels:    levels,
		templates: make(map[string]entities.ElementTemplate, len(input.Templates)),
		settings:  input.Settings,
		factory:   NewLineFactory(),
	}
	o.out.Summary.InstanceCounts = map[string]int{}
	for _, t := range input.Templates {
		o.templates[t.ID] = t
	}

	for _, inst := range input.Instances {
		o.processInstance(inst)
	}
	return o.out
}

func (o *Orchestrator) processInstance(inst entities.ElementInstance) {
	// A panic anywhere in per-instance processing becomes an accumulated
	// error; one broken instance must never abort the batch.
	defer func() {
		if r := recover(); r != nil {
			o.errorf("instance %s: unexpected failure: %v", inst.ID, r)
		}
	}()

	tmpl, ok := o.templates[inst.TemplateID]
	if !ok {
		o.errorf("instance %s references unknown template %q", inst.ID, inst.TemplateID)
		return
	}
	if _, ok := o.levels.ByLabel(inst.Placement.LevelID); !ok {
		o.errorf("instance %s (template %q): level %q not found (valid levels: %s)",
			inst.ID, tmpl.Name, inst.Placement.LevelID, o.levels.labelList())
		return
	}

	switch tmpl.Type {
	case entities.ElementTypeBeam:
		o.processBeam(inst, tmpl)
	case entities.ElementTypeColumn:
		o.processColumn(inst, tmpl)
	case entities.ElementTypeSlab:
		o.processSlab(inst, tmpl)
	case entities.ElementTypeFoundation:
		o.processFoundation(inst, tmpl)
	default:
		o.errorf("instance %s: template %q has unsupported element type %q", inst.ID, tmpl.Name, tmpl.Type)
	}
}

func (o *Orchestrator) processBeam(inst entities.ElementInstance, tmpl entities.ElementTemplate) {
	g, err := o.geometry.ResolveBeam(inst, tmpl)
	if err != nil {
		o.out.Errors = append(o.out.Errors, err.Error())
		return
	}
	o.countInstance(tmpl.Type)

	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindConcrete, Trade: entities.TradeConcrete, Unit: "cu.m",
		ResourceKey: tmpl.DPWHItemNumber,
		Result:      ConcreteVolumeBeam(g, o.settings.Waste.Concrete, o.settings.Rounding.Concrete),
	}))
	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindFormwork, Trade: entities.TradeFormwork, Unit: "sq.m",
		Result: FormworkAreaBeam(g, o.settings.Rounding.Formwork),
	}))

	if rc := tmpl.RebarConfig; rc != nil {
		// main/secondary bars run the beam length, spaced across the width;
		// stirrups wrap the section, spaced along the length
		o.emitRebar(inst, tmpl, entities.KindRebarMain, rc.MainBars, rc, g.Length, g.Width, []string{"rebar:main"})
		o.emitRebar(inst, tmpl, entities.KindRebarSecondary, rc.SecondaryBars, rc, g.Length, g.Width, []string{"rebar:secondary"})
		o.emitRebar(inst, tmpl, entities.KindRebarStirrups, rc.Stirrups, rc, 2*(g.Width+g.Height), g.Length, []string{"rebar:stirrups"})
	}
}

func (o *Orchestrator) processColumn(inst entities.ElementInstance, tmpl entities.ElementTemplate) {
	g, skipWarning, err := o.geometry.ResolveColumn(inst, tmpl)
	if err != nil {
		o.out.Errors = append(o.out.Errors, err.Error())
		return
	}
	if skipWarning != "" {
		o.out.Warnings = append(o.out.Warnings, skipWarning)
		return
	}
	o.countInstance(tmpl.Type)

	shapeTag := "shape:rect"
	perimeter := 2 * (g.Width + g.Depth)
	if g.Shape == ShapeCircular {
		shapeTag = "shape:circular"
		perimeter = math.Pi * g.Diameter
	}

	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindConcrete, Trade: entities.TradeConcrete, Unit: "cu.m",
		ResourceKey: tmpl.DPWHItemNumber,
		Result:      ConcreteVolumeColumn(g, o.settings.Waste.Concrete, o.settings.Rounding.Concrete),
		ExtraTags:   []string{shapeTag},
	}))
	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindFormwork, Trade: entities.TradeFormwork, Unit: "sq.m",
		Result:    FormworkAreaColumn(g, o.settings.Rounding.Formwork),
		ExtraTags: []string{shapeTag},
	}))

	if rc := tmpl.RebarConfig; rc != nil {
		// vertical bars run the clear height; ties wrap the section,
		// spaced along the height
		o.emitRebar(inst, tmpl, entities.KindRebarMain, rc.MainBars, rc, g.Height, perimeter, []string{"rebar:main", shapeTag})
		o.emitRebar(inst, tmpl, entities.KindRebarTies, rc.Ties, rc, perimeter, g.Height, []string{"rebar:ties", shapeTag})
	}
}

func (o *Orchestrator) processSlab(inst entities.ElementInstance, tmpl entities.ElementTemplate) {
	g, err := o.geometry.ResolveSlab(inst, tmpl)
	if err != nil {
		o.out.Errors = append(o.out.Errors, err.Error())
		return
	}
	o.countInstance(tmpl.Type)

	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindConcrete, Trade: entities.TradeConcrete, Unit: "cu.m",
		ResourceKey: tmpl.DPWHItemNumber,
		Result:      ConcreteVolumeSlab(g, o.settings.Waste.Concrete, o.settings.Rounding.Concrete),
	}))
	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindFormwork, Trade: entities.TradeFormwork, Unit: "sq.m",
		Result: FormworkAreaSlab(g, o.settings.Rounding.Formwork),
	}))

	if rc := tmpl.RebarConfig; rc != nil {
		// main bars span X distributed across Y; the secondary direction
		// swaps both, which is why per-axis lengths are retained
		o.emitRebar(inst, tmpl, entities.KindRebarMain, rc.MainBars, rc, g.XLength, g.YLength, []string{"rebar:main"})
		o.emitRebar(inst, tmpl, entities.KindRebarSecondary, rc.SecondaryBars, rc, g.YLength, g.XLength, []string{"rebar:secondary"})
	}
}

func (o *Orchestrator) processFoundation(inst entities.ElementInstance, tmpl entities.ElementTemplate) {
	g, err := o.geometry.ResolveFoundation(inst, tmpl)
	if err != nil {
		o.out.Errors = append(o.out.Errors, err.Error())
		return
	}
	o.countInstance(tmpl.Type)

	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindConcrete, Trade: entities.TradeConcrete, Unit: "cu.m",
		ResourceKey: tmpl.DPWHItemNumber,
		Result:      ConcreteVolumeFoundation(g, o.settings.Waste.Concrete, o.settings.Rounding.Concrete),
	}))
	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: entities.KindFormwork, Trade: entities.TradeFormwork, Unit: "sq.m",
		Result: FormworkAreaFoundation(g, o.settings.Rounding.Formwork),
	}))

	if rc := tmpl.RebarConfig; rc != nil {
		mainLen, mainSpan := g.Length, g.Width
		if g.Mode == FoundationMat {
			mainLen, mainSpan = g.XLength, g.YLength
		}
		o.emitRebar(inst, tmpl, entities.KindRebarMain, rc.MainBars, rc, mainLen, mainSpan, []string{"rebar:main"})
		o.emitRebar(inst, tmpl, entities.KindRebarSecondary, rc.SecondaryBars, rc, mainSpan, mainLen, []string{"rebar:secondary"})
	}
}

// emitRebar computes one reinforcement group. A failure in one group is
// accumulated without suppressing the other quantities of the instance.
func (o *Orchestrator) emitRebar(
	inst entities.ElementInstance,
	tmpl entities.ElementTemplate,
	kind entities.QuantityKind,
	group *entities.BarGroup,
	rc *entities.RebarConfig,
	barLength, countSpan float64,
	extraTags []string,
) {
	if group == nil {
		return
	}

	result, err := RebarWeight(*group, barLength, countSpan, o.settings.Waste.Rebar, o.settings.Rounding.Rebar)
	if err != nil {
		o.errorf("instance %s (template %q) %s: %v", inst.ID, tmpl.Name, kind, err)
		return
	}

	resourceKey := rc.DPWHRebarItem
	if resourceKey == "" {
		resourceKey = DPWHRebarItem(group.DiameterMM)
	}

	o.emit(o.factory.build(lineSpec{
		Instance: inst, Template: tmpl, LevelLabel: inst.Placement.LevelID,
		Kind: kind, Trade: entities.TradeRebar, Unit: "kg",
		ResourceKey: resourceKey,
		Result:      result,
		ExtraTags:   append(extraTags, fmt.Sprintf("diameter:%.0fmm", group.DiameterMM)),
		Assumptions: []string{RebarGrade(group.DiameterMM)},
	}))
}

// emit appends a line and folds it into the running summary; sums and
// counts only, so instance order never matters.
func (o *Orchestrator) emit(line entities.TakeoffLine) {
	o.out.Lines = append(o.out.Lines, line)
	o.out.Summary.LineCount++
	switch line.Trade {
	case entities.TradeConcrete:
		o.out.Summary.ConcreteVolume += line.Quantity
	case entities.TradeRebar:
		o.out.Summary.RebarWeight += line.Quantity
	case entities.TradeFormwork:
		o.out.Summary.FormworkArea += line.Quantity
	}
}

func (o *Orchestrator) countInstance(t entities.ElementType) {
	o.out.Summary.InstanceCounts[string(t)]++
}

func (o *Orchestrator) errorf(format string, args ...any) {
	o.out.Errors = append(o.out.Errors, fmt.Sprintf(format, args...))
}
