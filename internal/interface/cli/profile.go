package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

var (
	profileDate     string
	profileTime     string
	profilePlace    string
	profileTimezone string
	profileLat      float64
	profileLon      float64
	profileJSON     bool
	profileSave     bool
	profileUser     int64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Compute the astro profile for a birth moment",
	Long: `Computes the sun azimuth and altitude, zodiac sign, ascendant and moon
sign for the given date, time and coordinates. Latitude is positive north,
longitude positive east.`,
	Example: `  astro profile --date 1990-08-01 --time 09:30 --lat 48.85 --lon 2.35 --tz Europe/Paris`,
	Args:    cobra.NoArgs,
	RunE:    runProfile,
}

func init() {
	flags := profileCmd.Flags()
	flags.StringVar(&profileDate, "date", "", "birth date (YYYY-MM-DD)")
	flags.StringVar(&profileTime, "time", "", "birth time (HH:MM, 24h)")
	flags.StringVar(&profilePlace, "place", "Unknown", "birth place label")
	flags.StringVar(&profileTimezone, "tz", "", "IANA timezone of the birth time")
	flags.Float64Var(&profileLat, "lat", 0, "latitude in degrees")
	flags.Float64Var(&profileLon, "lon", 0, "longitude in degrees")
	flags.BoolVar(&profileJSON, "json", false, "output as JSON")
	flags.BoolVar(&profileSave, "save", false, "store the result in the profile database")
	flags.Int64Var(&profileUser, "user", 1, "owner id used with --save")
	_ = profileCmd.MarkFlagRequired("date")
	_ = profileCmd.MarkFlagRequired("time")
	_ = profileCmd.MarkFlagRequired("lat")
	_ = profileCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	if astroService == nil {
		return errors.New("astro service not configured")
	}
	lat, lon := profileLat, profileLon
	req := astro.Request{
		Date:       profileDate,
		BirthTime:  profileTime,
		BirthPlace: profilePlace,
		Latitude:   &lat,
		Longitude:  &lon,
		Timezone:   profileTimezone,
	}

	ctx := context.Background()
	var (
		resp astro.Response
		err  error
	)
	if profileSave {
		resp, err = astroService.Save(ctx, profileUser, req)
	} else {
		resp, err = astroService.Calculate(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("profile failed: %w", err)
	}

	if profileJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}
	printProfile(cmd, resp)
	return nil
}

func printProfile(cmd *cobra.Command, resp astro.Response) {
	info := resp.AdditionalInfo
	cmd.Printf("Place:       %s\n", resp.BirthPlace)
	cmd.Printf("UTC:         %s\n", info.UTC.Format("2006-01-02 15:04"))
	cmd.Printf("Sun sign:    %s\n", resp.ZodiacSign)
	cmd.Printf("Ascendant:   %s\n", resp.Ascendant)
	cmd.Printf("Moon sign:   %s\n", resp.MoonSign)
	cmd.Printf("Sun:         azimuth %.2f, altitude %.2f\n", resp.SunPosition.Azimuth, resp.SunPosition.Altitude)
	cmd.Printf("Julian date: %.5f\n", info.JulianDate)
	if info.Sunrise != nil && info.Sunset != nil {
		cmd.Printf("Daylight:    %s to %s UTC\n", info.Sunrise.Format("15:04"), info.Sunset.Format("15:04"))
	}
}
