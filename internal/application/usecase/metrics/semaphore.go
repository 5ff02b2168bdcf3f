package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/pulso-finanzas/backend/internal/domain/valueobject"
)

// Layer-1 state thresholds over the 0-100 completeness score.
const (
	capa1GreenScore  = 80
	capa1YellowScore = 50
)

// Layer-2 signal thresholds.
const (
	runwayGreenMonths  = 6.0
	runwayYellowMonths = 3.0

	salesRatioGreen  = 1.2
	salesRatioYellow = 1.0

	overdueRatioGreen  = 0.20
	overdueRatioYellow = 0.40
)

// Check 4 and check 8 grading boundaries.
const (
	balanceFreshDays    = 4
	balanceStaleDays    = 7
	differenceGreenPct  = 0.02
	differenceYellowPct = 0.10
)

// PendingItem is one unmet completeness check, rendered as a checklist entry
// with a remediation link.
type PendingItem struct {
	Label      string                     `json:"label"`
	ActionLink string                     `json:"action_link"`
	Weight     int                        `json:"weight"`
	State      valueobject.SemaphoreState `json:"state"`
}

// Capa1Result is the data-completeness layer: a 0-100 weighted score, its
// state, and the checklist of pending items.
type Capa1Result struct {
	Score        int                        `json:"score"`
	State        valueobject.SemaphoreState `json:"state"`
	PendingItems []PendingItem              `json:"pending_items"`
}

// Capa2Result is the financial-health layer, present only when capa 1 is
// green. Reason names the worst-scoring signal with its figure.
type Capa2Result struct {
	State        valueobject.SemaphoreState `json:"state"`
	Reason       string                     `json:"reason"`
	RunwayMonths float64                    `json:"runway_months"`
	SalesRatio   float64                    `json:"sales_ratio"`
	OverdueRatio float64                    `json:"overdue_ratio"`
}

// SemaphoreResult is the merged traffic light shown to the user.
type SemaphoreResult struct {
	Capa1      Capa1Result                `json:"capa1"`
	Capa2      *Capa2Result               `json:"capa2,omitempty"`
	FinalState valueobject.SemaphoreState `json:"final_state"`
	Message    string                     `json:"message"`
}

// checkGrade is the outcome of one completeness check. A check whose subject
// matter does not exist for the workspace is not applicable and leaves both
// sides of the score untouched.
type checkGrade struct {
	Applicable bool
	Credit     float64 // 1 full, 0.5 half, 0 none
}

func fullCredit() checkGrade    { return checkGrade{Applicable: true, Credit: 1} }
func halfCredit() checkGrade    { return checkGrade{Applicable: true, Credit: 0.5} }
func noCredit() checkGrade      { return checkGrade{Applicable: true, Credit: 0} }
func notApplicable() checkGrade { return checkGrade{} }

// completenessCheck is one row of the declarative capa-1 table.
type completenessCheck struct {
	Name       string
	Weight     int
	Label      string
	ActionLink string
	Grade      func(facts *PeriodFacts, now time.Time) checkGrade
}

// completenessChecks is the capa-1 check table. Adding or removing a check
// never touches the aggregation below.
var completenessChecks = []completenessCheck{
	{
		Name:       "gastos_fijos",
		Weight:     3,
		Label:      "Registra tus gastos fijos (mínimo 3)",
		ActionLink: "/gastos-fijos",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			switch {
			case facts.FixedExpenses.ConfirmedCount >= 3:
				return fullCredit()
			case facts.FixedExpenses.ConfirmedCount >= 1:
				return halfCredit()
			default:
				return noCredit()
			}
		},
	},
	{
		Name:       "meta_ventas",
		Weight:     3,
		Label:      "Define tu meta de ventas del mes",
		ActionLink: "/metas",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			if facts.Target != nil && facts.Target.SalesTarget.IsPositive() {
				return fullCredit()
			}
			return noCredit()
		},
	},
	{
		Name:       "datos_fiscales",
		Weight:     2,
		Label:      "Completa los datos fiscales de tus clientes",
		ActionLink: "/clientes",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			if facts.Clients.Total == 0 {
				return notApplicable()
			}
			completeness := float64(facts.Clients.Complete) / float64(facts.Clients.Total)
			switch {
			case completeness >= 1:
				return fullCredit()
			case completeness >= 0.7:
				return halfCredit()
			default:
				return noCredit()
			}
		},
	},
	{
		Name:       "saldo_reciente",
		Weight:     2,
		Label:      "Registra tu saldo bancario",
		ActionLink: "/saldos",
		Grade: func(facts *PeriodFacts, now time.Time) checkGrade {
			if facts.LatestSnapshot == nil {
				return noCredit()
			}
			age := facts.LatestSnapshot.Age(now)
			switch {
			case age < balanceFreshDays*24*time.Hour:
				return fullCredit()
			case age <= balanceStaleDays*24*time.Hour:
				return halfCredit()
			default:
				return noCredit()
			}
		},
	},
	{
		Name:       "oportunidades",
		Weight:     1,
		Label:      "Actualiza tus oportunidades activas",
		ActionLink: "/oportunidades",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			if facts.Opportunities.Active == 0 {
				return notApplicable()
			}
			freshness := float64(facts.Opportunities.RecentlyUpdated) / float64(facts.Opportunities.Active)
			switch {
			case freshness >= 1:
				return fullCredit()
			case freshness >= 0.7:
				return halfCredit()
			default:
				return noCredit()
			}
		},
	},
	{
		Name:       "borradores",
		Weight:     1,
		Label:      "Confirma tus gastos fijos en borrador",
		ActionLink: "/gastos-fijos",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			total := facts.FixedExpenses.DraftCount + facts.FixedExpenses.ConfirmedThisPeriod
			if total == 0 {
				return notApplicable()
			}
			confirmed := float64(facts.FixedExpenses.ConfirmedThisPeriod) / float64(total)
			switch {
			case confirmed >= 1:
				return fullCredit()
			case confirmed >= 0.5:
				return halfCredit()
			default:
				return noCredit()
			}
		},
	},
	{
		Name:       "horas_recientes",
		Weight:     1,
		Label:      "Registra horas trabajadas recientes",
		ActionLink: "/horas",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			if facts.RecentHours > 0 {
				return fullCredit()
			}
			return noCredit()
		},
	},
	{
		Name:       "conciliacion",
		Weight:     1,
		Label:      "Revisa la diferencia de conciliación",
		ActionLink: "/saldos",
		Grade: func(facts *PeriodFacts, _ time.Time) checkGrade {
			snapshot := facts.LatestSnapshot
			if snapshot == nil {
				return notApplicable()
			}
			difference := snapshot.Difference.Abs()
			if snapshot.Amount.IsZero() {
				if difference.IsZero() {
					return fullCredit()
				}
				return noCredit()
			}
			ratio, _ := difference.Div(snapshot.Amount.Abs()).Float64()
			switch {
			case ratio <= differenceGreenPct:
				return fullCredit()
			case ratio <= differenceYellowPct:
				return halfCredit()
			default:
				return noCredit()
			}
		},
	},
}

// ScoreCapa1 folds the check table into the completeness score, state, and
// pending-item checklist. Not-applicable checks count on neither side.
func ScoreCapa1(facts *PeriodFacts, now time.Time) Capa1Result {
	var greenWeight, totalWeight float64
	pending := make([]PendingItem, 0, len(completenessChecks))

	for _, check := range completenessChecks {
		grade := check.Grade(facts, now)
		if !grade.Applicable {
			continue
		}
		totalWeight += float64(check.Weight)
		greenWeight += grade.Credit * float64(check.Weight)

		if grade.Credit < 1 {
			state := valueobject.SemaphoreRed
			if grade.Credit > 0 {
				state = valueobject.SemaphoreYellow
			}
			pending = append(pending, PendingItem{
				Label:      check.Label,
				ActionLink: check.ActionLink,
				Weight:     check.Weight,
				State:      state,
			})
		}
	}

	score := 0
	if totalWeight > 0 {
		score = int(math.Round(greenWeight / totalWeight * 100))
	}

	state := valueobject.SemaphoreRed
	switch {
	case score >= capa1GreenScore:
		state = valueobject.SemaphoreGreen
	case score >= capa1YellowScore:
		state = valueobject.SemaphoreYellow
	}

	return Capa1Result{Score: score, State: state, PendingItems: pending}
}

// ScoreCapa2 derives the financial-health layer from the indicators. Callers
// invoke it only when capa 1 is green.
func ScoreCapa2(indicators *Indicators) *Capa2Result {
	result := &Capa2Result{
		RunwayMonths: indicators.RunwayMonths,
		OverdueRatio: indicators.OverdueRatio,
	}
	if indicators.BreakEvenPoint.IsPositive() {
		result.SalesRatio, _ = indicators.SalesThisPeriod.Div(indicators.BreakEvenPoint).Float64()
	} else {
		// Without fixed costs any sales level covers break-even.
		result.SalesRatio = salesRatioGreen + 1
	}

	runwayState := gradeSignal(result.RunwayMonths, runwayGreenMonths, runwayYellowMonths)
	salesState := gradeSignal(result.SalesRatio, salesRatioGreen, salesRatioYellow)
	overdueState := gradeOverdue(result.OverdueRatio)

	result.State = valueobject.Worst(runwayState, salesState, overdueState)

	switch {
	case runwayState == result.State:
		result.Reason = fmt.Sprintf("Pista de efectivo de %.1f meses", result.RunwayMonths)
	case salesState == result.State:
		result.Reason = fmt.Sprintf("Ventas en %.0f%% del punto de equilibrio", result.SalesRatio*100)
	default:
		result.Reason = fmt.Sprintf("%.0f%% de tu cartera está vencida", result.OverdueRatio*100)
	}

	return result
}

// gradeSignal grades a higher-is-better signal: green strictly above the
// first threshold, yellow at or above the second.
func gradeSignal(value, greenAbove, yellowAt float64) valueobject.SemaphoreState {
	switch {
	case value > greenAbove:
		return valueobject.SemaphoreGreen
	case value >= yellowAt:
		return valueobject.SemaphoreYellow
	default:
		return valueobject.SemaphoreRed
	}
}

func gradeOverdue(ratio float64) valueobject.SemaphoreState {
	switch {
	case ratio < overdueRatioGreen:
		return valueobject.SemaphoreGreen
	case ratio <= overdueRatioYellow:
		return valueobject.SemaphoreYellow
	default:
		return valueobject.SemaphoreRed
	}
}

// Merge combines both layers into the final state and user-facing message.
func Merge(capa1 Capa1Result, capa2 *Capa2Result) SemaphoreResult {
	result := SemaphoreResult{Capa1: capa1, Capa2: capa2, FinalState: capa1.State}
	if capa1.State == valueobject.SemaphoreGreen && capa2 != nil {
		result.FinalState = capa2.State
	}
	result.Message = semaphoreMessage(capa1, capa2)
	return result
}

func semaphoreMessage(capa1 Capa1Result, capa2 *Capa2Result) string {
	switch capa1.State {
	case valueobject.SemaphoreRed:
		return "Tus números aún no son confiables, completa la información pendiente."
	case valueobject.SemaphoreYellow:
		return fmt.Sprintf("Te faltan %d elementos para una lectura completa de tu negocio.", len(capa1.PendingItems))
	}

	if capa2 == nil {
		return "Datos completos, tu negocio está sano."
	}
	switch capa2.State {
	case valueobject.SemaphoreRed:
		return "Datos completos, tu negocio necesita acción inmediata."
	case valueobject.SemaphoreYellow:
		return "Datos completos, hay aspectos de tu negocio que requieren atención."
	default:
		return "Datos completos, tu negocio está sano."
	}
}
