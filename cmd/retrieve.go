package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"wadofetch/internal/adapters/dicomweb"
	studyrender "wadofetch/internal/adapters/render/study"
	"wadofetch/internal/application"
	"wadofetch/internal/domain"
)

func newRetrieveCmd(app *app) *cobra.Command {
	var (
		serverName    string
		studyUID      string
		seriesUID     string
		lazySteps     int
		showInstances bool
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "retrieve",
		Short: "Retrieve and print the metadata tree of one study",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			server, err := app.servers.GetByName(ctx, serverName)
			if err != nil {
				return err
			}

			client := dicomweb.NewClientWithHTTPClient(server, app.httpClient)
			service := application.NewRetrieveService(server, client, app.paletteCache)

			var study *domain.Study
			fetch := func(ctx context.Context, report func(string)) error {
				var fetchErr error
				study, fetchErr = service.Retrieve(ctx, studyUID, application.Filters{SeriesInstanceUID: seriesUID})
				if fetchErr != nil {
					return fetchErr
				}
				return pullLazySeries(ctx, study, lazySteps, report)
			}

			if err := runFetchSpinner(ctx, cmd.ErrOrStderr(), fetch); err != nil {
				return err
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(study)
			}

			rendered, err := app.studyRenderer(study, studyrender.RenderOptions{ShowInstances: showInstances})
			if err != nil {
				return fmt.Errorf("render study: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&serverName, "server", "", "Configured server name")
	cmd.Flags().StringVar(&studyUID, "study", "", "Study Instance UID to retrieve")
	cmd.Flags().StringVar(&seriesUID, "series", "", "Narrow retrieval to one Series Instance UID")
	cmd.Flags().IntVar(&lazySteps, "lazy-steps", 0, "Additional series to pull after a lazy retrieval (-1 for all)")
	cmd.Flags().BoolVar(&showInstances, "instances", false, "List individual instances under each series")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the study as JSON instead of the tree view")
	_ = cmd.MarkFlagRequired("server")
	_ = cmd.MarkFlagRequired("study")

	return cmd
}

// pullLazySeries drains up to steps series from a lazily loaded study's
// continuation handle, reporting progress after each one; steps < 0 drains
// everything.
func pullLazySeries(ctx context.Context, study *domain.Study, steps int, report func(string)) error {
	if study.SeriesLoader == nil || steps == 0 {
		return nil
	}

	for pulled := 0; study.SeriesLoader.HasNext(); pulled++ {
		if steps > 0 && pulled >= steps {
			break
		}
		if _, err := study.SeriesLoader.Next(ctx); err != nil {
			return fmt.Errorf("load next series: %w", err)
		}
		report(fmt.Sprintf("%d series loaded", len(study.SeriesList)))
	}
	return nil
}
