// Package shell implements the interactive browser over a finished report.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
	"github.com/carlosrabelo/vlanaudit/domain/services"
	"github.com/carlosrabelo/vlanaudit/infrastructure/output"
)

const prompt = "vlanaudit> "

var errExit = errors.New("exit")

// Browser answers questions about one report run
type Browser struct {
	result services.Result
	source string
}

// New creates a browser over result; source names the dump for the banner
func New(result services.Result, source string) *Browser {
	return &Browser{result: result, source: source}
}

// Run starts the interactive loop and returns on quit, EOF or a terminal error
func (b *Browser) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("ports"),
			readline.PcItem("port"),
			readline.PcItem("vlan"),
			readline.PcItem("faults"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return errors.Annotate(err, "readline init")
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%d port(s) from %s. Type 'help' for commands.\n", len(b.result.Rows), b.source)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := b.Dispatch(line, rl.Stdout()); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// Dispatch executes one command line, writing the answer to w
func (b *Browser) Dispatch(line string, w io.Writer) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "ports":
		return output.TableSink{}.Write(w, b.result.Rows)

	case "port":
		if len(parts) != 2 {
			return errors.New("usage: port <id>")
		}
		return b.showPort(parts[1], w)

	case "vlan":
		if len(parts) != 2 {
			return errors.New("usage: vlan <id>")
		}
		vlan, err := strconv.Atoi(parts[1])
		if err != nil || vlan < 0 {
			return errors.Errorf("invalid VLAN number %s", parts[1])
		}
		b.showVLAN(vlan, w)
		return nil

	case "faults":
		b.showFaults(w)
		return nil

	case "quit", "exit":
		return errExit

	case "?", "help":
		showHelp(w)
		return nil

	default:
		return errors.Errorf("unknown command: %s", parts[0])
	}
}

func (b *Browser) showPort(id string, w io.Writer) error {
	port := entities.CanonicalPort(id)
	membership, ok := b.result.Ports[port]
	if !ok {
		return errors.NotFoundf("port %s", id)
	}
	summary := services.Summary(membership, set.NewInts())
	if summary == "" {
		summary = "(no VLANs)"
	}
	fmt.Fprintf(w, "%s: %s\n", port, summary)
	return nil
}

func (b *Browser) showVLAN(vlan int, w io.Writer) {
	var tagged, untagged []string
	for port, membership := range b.result.Ports {
		if membership.Tagged.Contains(vlan) {
			tagged = append(tagged, port)
		}
		if membership.Untagged.Contains(vlan) {
			untagged = append(untagged, port)
		}
	}
	entities.SortPorts(tagged)
	entities.SortPorts(untagged)

	fmt.Fprintf(w, "VLAN %d\n", vlan)
	fmt.Fprintf(w, "  tagged:   %s\n", joinOrDash(tagged))
	fmt.Fprintf(w, "  untagged: %s\n", joinOrDash(untagged))
}

func (b *Browser) showFaults(w io.Writer) {
	if len(b.result.Faults) == 0 {
		fmt.Fprintln(w, "No skipped blocks")
		return
	}
	for _, fault := range b.result.Faults {
		fmt.Fprintf(w, "lines %d-%d: %s", fault.Block.FirstLine, fault.Block.LastLine, fault.Kind)
		if fault.Err != nil {
			fmt.Fprintf(w, " (%v)", fault.Err)
		}
		fmt.Fprintln(w)
	}
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  ports        list every port and its VLANs")
	fmt.Fprintln(w, "  port <id>    show one port")
	fmt.Fprintln(w, "  vlan <id>    list the ports carrying a VLAN")
	fmt.Fprintln(w, "  faults       list blocks left out of the report")
	fmt.Fprintln(w, "  help         show this help")
	fmt.Fprintln(w, "  quit         leave the browser")
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
