package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/considonet/g-env/pkg/host/htmlhost"
	"github.com/considonet/g-env/pkg/host/requesthost"
	"github.com/considonet/g-env/pkg/logger"
	"github.com/considonet/g-env/pkg/probe"
	"github.com/considonet/g-env/pkg/useragent"
)

var profiles = map[string][]string{
	"none":          nil,
	"modern":        htmlhost.ModernProperties,
	"legacy-webkit": htmlhost.LegacyWebKitProperties,
	"ie11":          htmlhost.IE11Properties,
}

type detectFlags struct {
	userAgent     string
	platform      string
	appVersion    string
	touch         bool
	documentTouch bool
	activeX       bool
	profile       string
	supports      []string
	scrollbar     int
	htmlFile      string
}

func newDetectCmd(a *app) *cobra.Command {
	f := &detectFlags{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Probe a synthetic document described by flags",
		Long: `Builds an in-memory document from the given navigator, window and style
settings and runs the probe over it. --app-version defaults to the user agent
without its "Mozilla/" prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}

			var host *htmlhost.Host
			if f.htmlFile != "" {
				file, err := os.Open(f.htmlFile)
				if err != nil {
					return err
				}
				defer file.Close()
				if host, err = htmlhost.Parse(file, opts...); err != nil {
					return err
				}
			} else {
				host = htmlhost.New(opts...)
			}

			client, _ := useragent.Describe(f.userAgent)
			log := a.log.With(logger.Command("detect"), logger.Client(client))

			report, err := probe.Detect(host)
			if err != nil {
				log.ErrorContext(cmd.Context(), "probe failed", logger.Error(err))
				return err
			}
			log.DebugContext(cmd.Context(), "environment probed", logger.UserAgent(f.userAgent))
			return writeReport(cmd.OutOrStdout(), a.format, report)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.userAgent, "user-agent", "", "navigator.userAgent")
	fl.StringVar(&f.platform, "platform", "", "navigator.platform, e.g. iPhone or Win32")
	fl.StringVar(&f.appVersion, "app-version", "", "navigator.appVersion")
	fl.BoolVar(&f.touch, "touch", false, "window has ontouchstart")
	fl.BoolVar(&f.documentTouch, "document-touch", false, "document is a DocumentTouch")
	fl.BoolVar(&f.activeX, "activex", false, "window has ActiveXObject")
	fl.StringVar(&f.profile, "profile", "none", "style property preset (none|modern|legacy-webkit|ie11)")
	fl.StringSliceVar(&f.supports, "supports", nil, "extra style properties the engine supports")
	fl.IntVar(&f.scrollbar, "scrollbar", 0, "scrollbar gutter width in pixels")
	fl.StringVar(&f.htmlFile, "html", "", "HTML file to use as the document")

	return cmd
}

func (f *detectFlags) options() ([]htmlhost.Option, error) {
	props, ok := profiles[f.profile]
	if !ok {
		return nil, errUnknownProfile(f.profile)
	}
	appVersion := f.appVersion
	if appVersion == "" {
		appVersion = requesthost.AppVersion(f.userAgent)
	}
	return []htmlhost.Option{
		htmlhost.WithUserAgent(f.userAgent),
		htmlhost.WithPlatform(f.platform),
		htmlhost.WithAppVersion(appVersion),
		htmlhost.WithTouchStart(f.touch),
		htmlhost.WithDocumentTouch(f.documentTouch),
		htmlhost.WithActiveX(f.activeX),
		htmlhost.WithStyleProperties(props...),
		htmlhost.WithStyleProperties(f.supports...),
		htmlhost.WithScrollbarGutter(f.scrollbar),
	}, nil
}

func errUnknownProfile(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}
