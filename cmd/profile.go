package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/fincoach/internal/cli"
	"github.com/theirongolddev/fincoach/internal/model"
	"github.com/theirongolddev/fincoach/internal/session"
	"github.com/theirongolddev/fincoach/internal/tui"

	"github.com/spf13/cobra"
)

var profileFlags struct {
	name       string
	age        string
	occupation string
	income     string
	experience string
	goals      string
	sample     string
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change your financial profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set up your profile (interactive unless flags are given)",
	Example: `  fincoach profile set
  fincoach profile set --name Alex --age 20 --occupation Student --income 1500 --goals "Pay off loans"
  fincoach profile set --sample professional`,
	RunE: runProfileSet,
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored profile",
	RunE:  runProfileClear,
}

func init() {
	f := profileSetCmd.Flags()
	f.StringVar(&profileFlags.name, "name", "", "Your name")
	f.StringVar(&profileFlags.age, "age", "", "Your age")
	f.StringVar(&profileFlags.occupation, "occupation", "", "Your occupation (\"student\" selects the student plan)")
	f.StringVar(&profileFlags.income, "income", "", "Monthly income in USD")
	f.StringVar(&profileFlags.experience, "experience", string(model.ExperienceBeginner), "Beginner, Intermediate or Advanced")
	f.StringVar(&profileFlags.goals, "goals", "", "Your financial goals")
	f.StringVar(&profileFlags.sample, "sample", "", "Use a demo profile: student or professional")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileClearCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	p := ws.session.Profile
	if p == nil {
		fmt.Println("\n  No profile yet. Run `fincoach profile set` to create one.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROFILE  " + p.Name))
	fmt.Println()
	fmt.Println(cli.RenderMetric("Plan", p.Segment.Title()))
	fmt.Println(cli.RenderMetric("Age", strconv.Itoa(p.Age)))
	fmt.Println(cli.RenderMetric("Occupation", p.Occupation))
	fmt.Println(cli.RenderMetric("Monthly income", cli.FormatMoney(p.Income)))
	fmt.Println(cli.RenderMetric("Experience", string(p.Experience)))
	fmt.Println(cli.RenderMetric("Goals", p.Goals))
	fmt.Println(cli.RenderMetric("Saved", cli.FormatAge(p.CreatedAt, nowFunc())))
	fmt.Println(cli.RenderMetric("Session", ws.session.ID))
	fmt.Println()
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	var in session.ProfileInput
	switch {
	case profileFlags.sample != "":
		in, err = sampleInput(ws, profileFlags.sample)
	case cmd.Flags().NFlag() > 0:
		in, err = session.ParseProfileInput(profileFlags.name, profileFlags.age, profileFlags.occupation,
			profileFlags.income, profileFlags.experience, profileFlags.goals)
	default:
		err = editProfile(ws)
		if err == nil {
			printProfileSaved(ws.session)
		}
		return err
	}
	if err != nil {
		return err
	}

	if _, err := ws.session.SubmitProfile(in); err != nil {
		return err
	}
	printProfileSaved(ws.session)
	return nil
}

func runProfileClear(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.store.DeleteProfile(ws.session.ID); err != nil {
		return err
	}
	fmt.Println("  Profile cleared.")
	return nil
}

// editProfile runs the interactive profile form and submits the result.
func editProfile(ws *workspace) error {
	vals := tui.ValuesFromProfile(ws.session.Profile)
	if err := tui.NewProfileForm(&vals).Run(); err != nil {
		return fmt.Errorf("profile form: %w", err)
	}
	in, err := vals.Input()
	if err != nil {
		return err
	}
	_, err = ws.session.SubmitProfile(in)
	return err
}

func sampleInput(ws *workspace, name string) (session.ProfileInput, error) {
	seg := model.Segment(name)
	u, ok := ws.content.SampleUser(seg)
	if !ok {
		return session.ProfileInput{}, fmt.Errorf("unknown sample %q (want student or professional)", name)
	}
	return session.ProfileInput{
		Name:       u.Name,
		Age:        u.Age,
		Occupation: u.Occupation,
		Income:     u.Income,
		Experience: u.Experience,
		Goals:      u.Goals,
	}, nil
}

func printProfileSaved(sess *session.Session) {
	p := sess.Profile
	fmt.Printf("\n  Saved %s's profile (%s plan, %s/month).\n\n", p.Name, p.Segment.Title(), cli.FormatMoney(p.Income))
	printEntry(sess.History[len(sess.History)-1])
}
