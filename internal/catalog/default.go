package catalog

// DefaultLocation is the feed title shown when no location is configured.
const DefaultLocation = "TempTok for Manhattan, NY"

// Default returns the built-in weather feed.
func Default() *Catalog {
	return MustNew([]Entry{
		{
			SourceURL: "videos/video1.mp4",
			Label:     "Today's forecast",
			Transcript: "Alright folks, we've got a chilly outlook ahead! Temperatures are dancing " +
				"around the 0 to 8 degree mark throughout the day. Expect a frosty start, with lows " +
				"creeping to nearly 2 degrees. But as we warm up, we might see some mild temps peaking " +
				"around a cozy 8 degrees.\n\nSo, grab that heavy coat and maybe a hot cup of cocoa, " +
				"because it's going to be a brisk day out there! Stay warm!",
		},
		{
			SourceURL:  "videos/video2.mp4",
			Label:      "Hourly breakdown",
			Transcript: "Video 2 transcript here",
		},
		{
			SourceURL:  "videos/video3.mp4",
			Label:      "10 day breakdown",
			Transcript: "Video 3 transcript here",
		},
	})
}
