package planner

import (
	"fmt"
	"math"
	"strings"
)

// Phase is one slice of the development timeline as a share of the total days.
type Phase struct {
	Name    string
	Percent int
	Tasks   []string
}

// ScheduledPhase is a Phase placed on the calendar. Day numbers are 1-based and inclusive.
type ScheduledPhase struct {
	Phase
	StartDay int
	EndDay   int
}

// Days is the number of days the phase spans.
func (p ScheduledPhase) Days() int { return p.EndDay - p.StartDay + 1 }

func phaseTemplate(days int) []Phase {
	switch {
	case days > 0 && days <= 3:
		return []Phase{
			{"Planning & Setup", 20, []string{"Project setup", "Environment configuration", "Basic structure"}},
			{"Core Development", 60, []string{"Implement main features", "Basic functionality"}},
			{"Testing & Polish", 20, []string{"Bug fixes", "Basic testing", "Documentation"}},
		}
	case days > 0 && days <= 7:
		return []Phase{
			{"Planning & Setup", 15, []string{"Project setup", "Environment configuration", "Architecture planning"}},
			{"Core Development", 50, []string{"Database models", "API routes", "Basic UI"}},
			{"Features & Integration", 25, []string{"Implement features", "Third-party integrations"}},
			{"Testing & Polish", 10, []string{"Testing", "Bug fixes", "Documentation"}},
		}
	case days > 0 && days <= 14:
		return []Phase{
			{"Planning & Setup", 10, []string{"Project setup", "Environment configuration", "Architecture planning"}},
			{"Core Development", 40, []string{"Database models", "API routes", "Basic UI"}},
			{"Features & Integration", 35, []string{"Implement features", "Third-party integrations", "Advanced functionality"}},
			{"Testing & Polish", 15, []string{"Comprehensive testing", "Bug fixes", "Performance optimization", "Documentation"}},
		}
	default:
		// longer than two weeks, or open-ended (0 days)
		return []Phase{
			{"Planning & Setup", 10, []string{"Project setup", "Environment configuration", "Architecture planning", "Team setup"}},
			{"Core Development", 35, []string{"Database models", "API routes", "Basic UI", "Core features"}},
			{"Features & Integration", 35, []string{"Implement features", "Third-party integrations", "Advanced functionality", "AI/ML integration"}},
			{"Testing & Polish", 20, []string{"Comprehensive testing", "Performance optimization", "Security audit", "Documentation", "Deployment"}},
		}
	}
}

// phaseDays rounds half to even and never returns less than one day. The spans
// may add up to more than the total (7 days gives 1+4+2+1).
func phaseDays(totalDays, percent int) int {
	d := int(math.RoundToEven(float64(totalDays*percent) / 100))
	if d < 1 {
		return 1
	}
	return d
}

// Schedule lays the phases for totalDays out back to back from day 1.
// projectType does not influence the selection.
func Schedule(totalDays int, projectType string) []ScheduledPhase {
	tpl := phaseTemplate(totalDays)
	out := make([]ScheduledPhase, 0, len(tpl))
	day := 1
	for _, p := range tpl {
		end := day + phaseDays(totalDays, p.Percent) - 1
		out = append(out, ScheduledPhase{Phase: p, StartDay: day, EndDay: end})
		day = end + 1
	}
	return out
}

// RenderTimeline renders the phases as markdown headings with unchecked task lists.
// difficulty is accepted for callers but does not change the phases.
func RenderTimeline(totalDays int, projectType, difficulty string) string {
	var b strings.Builder
	for _, p := range Schedule(totalDays, projectType) {
		fmt.Fprintf(&b, "### %s (Day %d-%d)\n", p.Name, p.StartDay, p.EndDay)
		for _, task := range p.Tasks {
			fmt.Fprintf(&b, "- [ ] %s\n", task)
		}
		b.WriteString("\n")
	}
	return b.String()
}
