package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/cluso-social/pkg/algorithms"
	"github.com/dd0wney/cluso-social/pkg/analysis"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)
)

const separator = "*******************************"

const (
	choiceDisplay = iota + 1
	choiceSuggest
	choiceDegree
	choiceClustering
	choiceCommunities
	choiceExit
)

// CLI is the numbered menu over one analyzer.
type CLI struct {
	analyzer          *analysis.Analyzer
	scanner           *bufio.Scanner
	out               io.Writer
	defaultIterations int
}

// NewCLI creates a menu reading choices from in and writing to out.
func NewCLI(a *analysis.Analyzer, in io.Reader, out io.Writer, defaultIterations int) *CLI {
	return &CLI{
		analyzer:          a,
		scanner:           bufio.NewScanner(in),
		out:               out,
		defaultIterations: defaultIterations,
	}
}

// Run shows the menu until the user exits or input ends.
func (cli *CLI) Run() {
	for {
		cli.showMenu()

		line, ok := cli.readLine("Enter your choice: ")
		if !ok {
			fmt.Fprintln(cli.out)
			return
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = 0
		}

		switch choice {
		case choiceDisplay:
			cli.displayNetwork()
		case choiceSuggest:
			cli.suggestFriends()
		case choiceDegree:
			cli.degreeCentrality()
		case choiceClustering:
			cli.clusteringCoefficient()
		case choiceCommunities:
			cli.detectCommunities()
		case choiceExit:
			fmt.Fprintln(cli.out, "Exit")
			return
		default:
			cli.errorf("Invalid choice. Try again.")
		}
		fmt.Fprintln(cli.out)
	}
}

func (cli *CLI) showMenu() {
	fmt.Fprintln(cli.out, titleStyle.Render("Welcome to the Social Network Analyzer"))
	fmt.Fprintln(cli.out, "1. Display the social network")
	fmt.Fprintln(cli.out, "2. Suggest friends")
	fmt.Fprintln(cli.out, "3. Calculate degree centrality for any user")
	fmt.Fprintln(cli.out, "4. Calculate clustering coefficient")
	fmt.Fprintln(cli.out, "5. Detect communities using the Girvan-Newman algorithm")
	fmt.Fprintln(cli.out, "6. Exit")
}

func (cli *CLI) displayNetwork() {
	people := cli.analyzer.People()

	fmt.Fprintln(cli.out, titleStyle.Render("The Social Network:"))
	fmt.Fprintf(cli.out, "Number of users: %d\n", len(people))
	fmt.Fprintln(cli.out, separatorStyle.Render(separator))
	for _, p := range people {
		cli.field("ID", strconv.Itoa(p.ID()))
		cli.field("Name", p.Name())
		cli.field("Age", strconv.Itoa(p.Age()))
		cli.field("Gender", p.Gender())
		cli.field("Occupation", p.Occupation())
		cli.field("Friends", joinInts(p.Friends()))
		fmt.Fprintln(cli.out, separatorStyle.Render(separator))
	}
}

func (cli *CLI) suggestFriends() {
	id, ok := cli.readInt("Enter the ID of the person: ")
	if !ok {
		cli.errorf("Invalid person ID.")
		return
	}

	fmt.Fprintln(cli.out, "Enter the mode:")
	fmt.Fprintln(cli.out, "1. By Common Friends")
	fmt.Fprintln(cli.out, "2. By Occupation")
	fmt.Fprintln(cli.out, "3. By Age")
	mode, ok := cli.readInt("Mode: ")
	if !ok {
		cli.errorf("Invalid mode.")
		return
	}

	suggestions := cli.analyzer.SuggestFriends(id, algorithms.SuggestionMode(mode))
	cli.field(fmt.Sprintf("Suggested friends for person %d", id), joinInts(suggestions))
}

func (cli *CLI) degreeCentrality() {
	id, ok := cli.readInt("Enter the ID of the person: ")
	if !ok {
		cli.errorf("Invalid person ID.")
		return
	}
	fmt.Fprintf(cli.out, "Degree centrality for %d is %d\n", id, cli.analyzer.DegreeCentrality(id))
}

func (cli *CLI) clusteringCoefficient() {
	id, ok := cli.readInt("Enter the ID of the person: ")
	if !ok {
		cli.errorf("Invalid person ID.")
		return
	}
	fmt.Fprintf(cli.out, "Clustering coefficient for %d is %g\n", id, cli.analyzer.ClusteringCoefficient(id))
}

func (cli *CLI) detectCommunities() {
	prompt := fmt.Sprintf("Number of iterations for Girvan-Newman [%d]: ", cli.defaultIterations)
	iterations, ok := cli.readIntDefault(prompt, cli.defaultIterations)
	if !ok || iterations < 0 {
		cli.errorf("Iterations must be a non-negative integer.")
		return
	}

	result := cli.analyzer.CommunityDetection(iterations)
	fmt.Fprintf(cli.out, "Communities: %d\n", len(result.Communities))
	for i, c := range result.Communities {
		cli.field(fmt.Sprintf("The Community %d consists of", i+1), joinInts(c.Members))
	}
	fmt.Fprintf(cli.out, "Modularity: %.4f\n", result.Modularity)
}

// readLine prompts and returns the trimmed next line. ok is false once
// input ends.
func (cli *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(cli.out, prompt)
	if !cli.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(cli.scanner.Text()), true
}

func (cli *CLI) readInt(prompt string) (int, bool) {
	line, ok := cli.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	return n, err == nil
}

func (cli *CLI) readIntDefault(prompt string, def int) (int, bool) {
	line, ok := cli.readLine(prompt)
	if !ok {
		return 0, false
	}
	if line == "" {
		return def, true
	}
	n, err := strconv.Atoi(line)
	return n, err == nil
}

func (cli *CLI) field(label, value string) {
	fmt.Fprintf(cli.out, "%s %s\n", labelStyle.Render(label+":"), value)
}

func (cli *CLI) errorf(format string, args ...any) {
	fmt.Fprintln(cli.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (cli *CLI) successf(format string, args ...any) {
	fmt.Fprintln(cli.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
