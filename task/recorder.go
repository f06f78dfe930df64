package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const recorderLineWidth = 80

// Recorder observes the outcome of collection operations. Implementations
// must not affect operation results; the collection calls Record only
// after validation has passed and the operation has run.
type Recorder interface {
	// Record reports that an operation ran and what it produced.
	Record(event, result string)
}

type noopRecorder struct{}

func (noopRecorder) Record(string, string) {}

// ConsoleRecorder writes recorded events to a writer, one block per event,
// with a styled event header.
type ConsoleRecorder struct {
	writer      io.Writer
	headerStyle lipgloss.Style
}

// NewConsoleRecorder builds a styled recorder for interactive output.
func NewConsoleRecorder(writer io.Writer) *ConsoleRecorder {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleRecorder{
		writer:      writer,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	}
}

// Record writes one event. Long results wrap at the recorder line width.
func (recorder *ConsoleRecorder) Record(event, result string) {
	if recorder == nil {
		return
	}
	result = strings.TrimRight(result, "\r\n")
	if result == "" {
		result = "-"
	}
	header := recorder.headerStyle.Render(event + ":")
	fmt.Fprintf(recorder.writer, "%s %s\n", header, wordwrap.String(result, recorderLineWidth))
}
