package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/freeatlas/resourcefinder/internal/catalog"
	"github.com/freeatlas/resourcefinder/internal/evaluator"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *evaluator.Payload:
		return payloadTable(w, v)
	case []catalog.ResourceRecord:
		return resourcesTable(w, v)
	case *catalog.ResourceRecord:
		return resourceDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func payloadTable(w io.Writer, p *evaluator.Payload) error {
	if len(p.Results) == 0 {
		fmt.Fprintln(w, "No resources found.")
		return nil
	}

	if p.Summary != nil {
		fmt.Fprintln(w, p.Summary.Headline)
		fmt.Fprintln(w, wordWrap(p.Summary.Nuance, 78))
		fmt.Fprintln(w, wordWrap(p.Summary.Opportunity, 78))
		fmt.Fprintln(w)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Resource", "Category", "Score", "Confidence", "Location"})
	table.SetAutoWrapText(false)

	for i, r := range p.Results {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			r.Resource.Name,
			r.Resource.Category.Label(),
			fmt.Sprintf("%.2f", r.Score),
			string(r.Confidence),
			string(r.LocationTier),
		})
	}
	table.Render()

	for i, r := range p.Results {
		fmt.Fprintf(w, "\n%d. %s (%s)\n", i+1, r.Resource.Name, r.Resource.Availability)
		for _, line := range r.Rationale {
			fmt.Fprintf(w, "   - %s\n", wordWrap(line, 75))
		}
		for _, h := range r.Resource.Highlights {
			fmt.Fprintf(w, "   * %s\n", h)
		}
	}

	if len(p.CategoryDistribution) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Category distribution:")
		distributionBars(w, p.CategoryDistribution, len(p.Results))
	}

	return nil
}

// distributionBars renders a textual bar per category, scaled to the
// number of returned results
func distributionBars(w io.Writer, entries []evaluator.DistributionEntry, total int) {
	if total < 1 {
		total = 1
	}

	width := 0
	for _, e := range entries {
		if n := len(e.Category.Label()); n > width {
			width = n
		}
	}

	for _, e := range entries {
		bar := strings.Repeat("#", e.Amount*20/total)
		fmt.Fprintf(w, "  %-*s  %-20s %d\n", width, e.Category.Label(), bar, e.Amount)
	}
}

func resourcesTable(w io.Writer, records []catalog.ResourceRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "Catalog is empty.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Category", "Coverage", "Availability"})
	table.SetAutoWrapText(false)

	for _, r := range records {
		table.Append([]string{
			r.ID,
			r.Name,
			r.Category.Label(),
			formatCoverage(r.Coverage),
			truncate(r.Availability, 30),
		})
	}
	table.Render()

	return nil
}

func resourceDetail(w io.Writer, r *catalog.ResourceRecord) error {
	fmt.Fprintf(w, "Name:         %s\n", r.Name)
	fmt.Fprintf(w, "Category:     %s\n", r.Category.Label())
	fmt.Fprintf(w, "Description:  %s\n", wordWrap(r.Description, 64))
	fmt.Fprintf(w, "Tags:         %s\n", strings.Join(r.Tags, ", "))
	fmt.Fprintf(w, "Availability: %s\n", r.Availability)
	fmt.Fprintf(w, "Coverage:     %s\n", formatCoverage(r.Coverage))

	if r.ProofRequired != nil {
		fmt.Fprintf(w, "Bring:        %s\n", *r.ProofRequired)
	}
	if r.Website != nil {
		fmt.Fprintf(w, "Website:      %s\n", *r.Website)
	}
	if r.Notes != nil {
		fmt.Fprintf(w, "Notes:        %s\n", wordWrap(*r.Notes, 64))
	}

	if len(r.Highlights) > 0 {
		fmt.Fprintln(w, "Highlights:")
		for _, h := range r.Highlights {
			fmt.Fprintf(w, "  * %s\n", h)
		}
	}

	return nil
}

func formatCoverage(c catalog.Coverage) string {
	if c.IsNational() {
		return "national"
	}
	return strings.Join(c.Cities, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// wordWrap wraps text at the specified width
func wordWrap(text string, width int) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if len(line) <= width {
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}
