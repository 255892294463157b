package report

import (
	"fmt"
	"strings"
	"time"

	"ppw/internal/application/commands"
	"ppw/internal/domain"
)

// RenderSummary renders one OK/FAIL line per batch entry followed by totals
func RenderSummary(res *commands.BatchResult) string {
	var sb strings.Builder

	for _, f := range res.Files {
		if f.OK() {
			fmt.Fprintf(&sb, "%s %s -> %s %s\n",
				OK.Render("OK  "),
				Path.Render(f.Entry.Input),
				Path.Render(f.Result.Artifacts.CompiledOutput),
				Detail.Render(fmt.Sprintf("(%d slot(s))", f.Result.SlotCount)))
			continue
		}
		fmt.Fprintf(&sb, "%s %s\n", Fail.Render("FAIL"), Path.Render(f.Entry.Input))
		fmt.Fprintf(&sb, "     %s\n", Detail.Render(f.Err.Error()))
	}

	failed := res.Failed()
	total := Title.Render(fmt.Sprintf("%d file(s), %d ok, %d failed", len(res.Files), len(res.Files)-failed, failed))
	sb.WriteString(total)
	sb.WriteString("\n")
	return sb.String()
}

// RenderArtifacts lists every path of an artifact set, one role per line
func RenderArtifacts(set domain.ArtifactSet) string {
	var sb strings.Builder
	for _, role := range domain.Roles {
		p, _ := set.Path(role)
		fmt.Fprintf(&sb, "%s %s\n", Label.Render(string(role)), p)
	}
	if set.DefaultedOutputDir {
		sb.WriteString(Notice.Render("output directory defaulted to " + set.OutputDir))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderHistory renders run records newest first
func RenderHistory(records []domain.RunRecord) string {
	if len(records) == 0 {
		return Detail.Render("No runs recorded.") + "\n"
	}

	var sb strings.Builder
	for _, r := range records {
		status := OK.Render("OK  ")
		if r.Status != domain.RunSucceeded {
			status = Fail.Render("FAIL")
		}
		fmt.Fprintf(&sb, "%s %s %s %s %s\n",
			status,
			Detail.Render(r.StartedAt.Format(time.DateTime)),
			Path.Render(r.Input),
			Detail.Render(r.Flow.String()),
			Detail.Render(r.Duration.Round(time.Millisecond).String()))
		if r.Error != "" {
			fmt.Fprintf(&sb, "     %s\n", Detail.Render(r.Error))
		}
	}
	return sb.String()
}
