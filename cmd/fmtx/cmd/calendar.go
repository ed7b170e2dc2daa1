package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/utils/timex"
)

var calendarFields = []timex.Field{
	timex.FieldYear,
	timex.FieldMonth,
	timex.FieldMonthDay,
	timex.FieldOrdinalDay,
	timex.FieldIsoYear,
	timex.FieldIsoWeek,
	timex.FieldWeekday,
	timex.FieldMeridiem,
	timex.FieldHour23,
	timex.FieldHour11,
	timex.FieldMinute,
	timex.FieldSecond,
	timex.FieldMillisecond,
}

func newCalendarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [zeitpunkt]",
		Short: "Gregorianische und ISO-Felder eines Zeitpunkts",
		Long: `Zeigt alle Kalenderfelder eines Zeitpunkts: gregorianisches Datum,
Tag im Jahr, ISO-Woche und Uhrzeit. Ohne Argument wird die aktuelle Zeit
verwendet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "now"
			if len(args) == 1 {
				arg = args[0]
			}
			dt, err := parseInstant(arg)
			if err != nil {
				return err
			}
			opts.logger.Debug("calendar", mdwlog.Fields{"timestamp": dt.Timestamp()})

			printHeader(cmd.OutOrStdout(), dt.String())
			fmt.Fprintln(cmd.OutOrStdout(), calendarTable(dt))
			return nil
		},
	}
}

func calendarTable(dt timex.DateTime) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Feld", "Wert")

	for _, f := range calendarFields {
		t.Row(f.Label(), strconv.Itoa(dt.Get(f)))
	}
	t.Row("Schaltjahr", yesNo(dt.IsLeapYear()))
	t.Row("Tage im Monat", strconv.Itoa(timex.DaysInMonth(dt.Year(), dt.Month())))
	t.Row("ISO-Wochen im Jahr", strconv.Itoa(timex.WeeksInIsoYear(dt.IsoYear())))
	t.Row("Zeitstempel (ms)", strconv.FormatInt(dt.Timestamp(), 10))
	return t.String()
}

func yesNo(b bool) string {
	if b {
		return "ja"
	}
	return "nein"
}
