package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer a topic's questions in plain text (nothing is saved)",
	Long: `Walk through the questions of one topic on stdin/stdout.

This is a stateless authoring tool: no results file, no history. Useful for
checking a new question bank before handing it out.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic to preview (required)")
	previewCmd.Flags().Bool("shuffle", false, "Shuffle questions and answers")
	previewCmd.Flags().Bool("show-answers", false, "Print the correct answers without asking")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	shuffle, _ := cmd.Flags().GetBool("shuffle")
	showAnswers, _ := cmd.Flags().GetBool("show-answers")

	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}
	if !bank.HasTopic(topic) {
		return fmt.Errorf("no questions for topic %q (see: smarttest topics)", topic)
	}

	questions := bank.ByTopic(topic)
	if shuffle {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		for _, q := range questions {
			rand.Shuffle(len(q.Answers), func(i, j int) {
				q.Answers[i], q.Answers[j] = q.Answers[j], q.Answers[i]
			})
		}
	}

	return preview(cmd.InOrStdin(), cmd.OutOrStdout(), topic, questions, showAnswers)
}

// preview runs questions against in and returns when they are exhausted or
// input closes.
func preview(in io.Reader, out io.Writer, topic string, questions []quiz.Question, showAnswers bool) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Topic: %s (%d questions)\n\n", topic, len(questions))

	var correct, asked int
	for i, q := range questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n", i+1, len(questions))
		fmt.Fprintln(out, q.Text)
		for j, a := range q.Answers {
			fmt.Fprintf(out, "  %d) %s\n", j+1, a)
		}

		if showAnswers {
			fmt.Fprintf(out, "Correct: %s\n\n", strings.Join(q.CorrectAnswers, ", "))
			continue
		}

		prompt := "\nYour answer: "
		if q.Multiple {
			prompt = "\nYour answers (comma separated): "
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		asked++

		chosen, err := parseChoices(scanner.Text(), q.Answers)
		if err != nil {
			fmt.Fprintf(out, "%v\n\n", err)
			continue
		}
		if quiz.Grade(q, chosen) {
			correct++
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Wrong. Answer: %s\n", strings.Join(q.CorrectAnswers, ", "))
		}
		fmt.Fprintln(out)
	}

	if !showAnswers {
		fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, asked)
	}
	return nil
}

// parseChoices maps "1, 3" to the matching answer texts.
func parseChoices(line string, answers []string) ([]string, error) {
	var chosen []string
	for _, f := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(answers) {
			return nil, fmt.Errorf("(invalid choice %q)", f)
		}
		chosen = append(chosen, answers[n-1])
	}
	if len(chosen) == 0 {
		return nil, fmt.Errorf("(skipped)")
	}
	return chosen, nil
}
