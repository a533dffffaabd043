package config

import (
	"time"

	"chosenoffset.com/raccoon/internal/core/geom"
)

// Scene ids used by the default content.
const (
	SceneOutside  = "outside"
	SceneInside   = "inside"
	SceneUpstairs = "upstairs"
)

// DefaultConfig returns the tuned values for the detective raccoon house.
func DefaultConfig() *Config {
	return &Config{
		Reference: geom.Size{W: 1440, H: 900},
		Avatar: AvatarConfig{
			Width:       540,
			Speed:       350,
			SpriteSheet: "data/raccoon_sprites.json",
		},
		Physics: PhysicsConfig{
			Gravity:    1800,
			JumpSpeed:  900,
			ClimbSpeed: 700,
		},
		Camera: CameraConfig{
			Smoothing: 0.15,
			AnchorY:   0.75,
		},
		Transition: TransitionConfig{
			FadeDuration:  500 * time.Millisecond,
			FadeTimeout:   1500 * time.Millisecond,
			LoadTimeout:   10 * time.Second,
			MaxFrameDelta: 250 * time.Millisecond,
		},
		Spotlight: SpotlightConfig{
			Radius:   420,
			Darkness: 0.65,
		},
		Assets: AssetsConfig{
			Root:        ".",
			AssetMap:    "asset-map.json",
			Concurrency: 6,
			Manifest:    defaultManifest(),
		},
		StartScene: SceneOutside,
		Scenes:     defaultScenes(),
		Panels:     defaultPanels(),
		Suitcase:   defaultSuitcase(),
		TouchPad: TouchPadConfig{
			ButtonSize: 72,
			Margin:     24,
		},
	}
}

func defaultManifest() Manifest {
	return Manifest{
		Critical: []string{
			"assets/raccoon_sheet.png",
			"assets/outside_house.jpg",
			"assets/static_downstairs.jpg",
			"assets/static_upstairs.jpg",
			"assets/loadpusheen.png",
		},
		UI: []string{
			"assets/backbutton.png",
			"assets/email.png",
			"assets/linkedin.png",
			"assets/github.png",
			"assets/githubblack.png",
			"assets/projects.png",
			"assets/aboutme.png",
			"assets/arrow.png",
			"assets/exitButton.png",
			"assets/searchIcon.png",
		},
		Projects: []string{
			"assets/jamLaunchIcon.png",
			"assets/lucyProjectIcon.png",
			"assets/revisionProjectIcon.png",
			"assets/designtoIcon.png",
			"assets/designtoIconPressed.png",
			"assets/suitcase.png",
		},
		Content: []string{
			"assets/jamAsset.png",
			"assets/jamAsset2.png",
			"assets/jamNote.png",
			"assets/jamVid.png",
			"assets/lucyAsset.png",
			"assets/lucyAsset2.png",
			"assets/lucyNote.png",
			"assets/lucyArticle.png",
			"assets/revisionAsset.png",
			"assets/revisionAsset2.png",
			"assets/revisionNote.png",
			"assets/designAsset.png",
			"assets/designAsset2.png",
			"assets/designNote.png",
			"assets/designtoAsset.png",
			"assets/designtoAsset2.png",
			"assets/designtoNote.png",
			"assets/fatherfigureAsset.png",
			"assets/fatherfigureAsset2.png",
			"assets/fatherfigureNote.png",
			"assets/fatherfigureNote2.png",
			"assets/suitcaseAsset.png",
			"assets/shelfNote.png",
			"assets/aboutmeNote.png",
			"assets/fionafang.png",
		},
	}
}

func defaultScenes() []SceneConfig {
	return []SceneConfig{
		{
			ID:            SceneOutside,
			Background:    "assets/outside_house.jpg",
			Fit:           "cover",
			Zoom:          1,
			GroundOffset:  140,
			CeilingOffset: 10,
			Spawn:         SpawnConfig{Percent: &geom.Percent{X: 20, Y: 78}},
			Spotlight:     true,
			Hotspots: []HotspotConfig{
				{
					ID:           "door",
					Kind:         "traversal",
					Anchor:       geom.Percent{X: 74, Y: 66},
					Radius:       300,
					Label:        "Enter house ⏎",
					PromptOffset: geom.Point{Y: -40},
					Effect:       EffectConfig{Scene: SceneInside},
				},
			},
		},
		{
			ID:            SceneInside,
			Background:    "assets/static_downstairs.jpg",
			Fit:           "fit_height",
			Zoom:          1,
			GroundOffset:  90,
			CeilingOffset: 10,
			Spawn:         SpawnConfig{X: 140},
			Greeting: GreetingConfig{
				Text:     "Not too shabby.. Eh?",
				Duration: 2600 * time.Millisecond,
			},
			Hotspots: []HotspotConfig{
				{
					ID:           "exit",
					Kind:         "traversal",
					Anchor:       geom.Percent{X: 3, Y: 72},
					Radius:       160,
					Label:        "Exit house ⏎",
					PromptOffset: geom.Point{X: 50, Y: -40},
					Effect:       EffectConfig{Scene: SceneOutside, Arrive: "door"},
				},
				{
					ID:           "suitcase",
					Kind:         "item",
					Anchor:       geom.Percent{X: 22, Y: 96},
					Radius:       220,
					Label:        "Open briefcase ⏎",
					PromptOffset: geom.Point{Y: -40},
					Visual: &VisualConfig{
						Image:     "assets/suitcaseAsset.png",
						WidthPct:  27,
						HeightPct: 14,
					},
					Effect: EffectConfig{Overlay: "inventory"},
				},
				{
					ID:           "stairs",
					Kind:         "traversal",
					Anchor:       geom.Percent{X: 92, Y: 60},
					Radius:       180,
					Label:        "Go upstairs ⏎",
					PromptOffset: geom.Point{Y: -40},
					Effect:       EffectConfig{Scene: SceneUpstairs, Arrive: "stairs"},
				},
			},
		},
		{
			ID:            SceneUpstairs,
			Background:    "assets/static_upstairs.jpg",
			Fit:           "fit_height",
			Zoom:          1.1,
			GroundOffset:  90,
			CeilingOffset: 10,
			Spawn:         SpawnConfig{X: 160},
			Hotspots: []HotspotConfig{
				{
					ID:           "stairs",
					Kind:         "traversal",
					Anchor:       geom.Percent{X: 8, Y: 70},
					Radius:       160,
					Label:        "Go downstairs ⏎",
					PromptOffset: geom.Point{X: 40, Y: -40},
					Effect:       EffectConfig{Scene: SceneInside, Arrive: "stairs"},
				},
				{
					ID:           "shelf",
					Kind:         "item",
					Anchor:       geom.Percent{X: 55, Y: 62},
					Radius:       200,
					Label:        "Open shelf ⏎",
					PromptOffset: geom.Point{Y: -40},
					Effect:       EffectConfig{Overlay: "shelf"},
				},
				{
					ID:           "desk",
					Kind:         "item",
					Anchor:       geom.Percent{X: 82, Y: 72},
					Radius:       180,
					Label:        "About me ⏎",
					PromptOffset: geom.Point{Y: -40},
					Effect:       EffectConfig{Overlay: "about_me"},
				},
			},
		},
	}
}

func defaultPanels() []PanelConfig {
	github := func(url string, rect geom.Rect) LinkConfig {
		return LinkConfig{Label: "View on GitHub", URL: url, Icon: "assets/githubblack.png", Rect: rect}
	}

	return []PanelConfig{
		{
			ID:    "inventory",
			Pages: []PageConfig{{Background: "assets/suitcase.png"}},
		},
		{
			ID:     "project/fatherfigure",
			Parent: "inventory",
			Pages: []PageConfig{
				{
					Background: "assets/fatherfigureNote.png",
					Video: &VideoConfig{
						ID:   "fatherfigure-demo",
						URL:  "https://www.youtube.com/watch?v=rnDSdft8QbM",
						Rect: geom.Rect{X: 12, Y: 30, W: 34, H: 30},
					},
					Links: []LinkConfig{github("https://github.com/fiof25/father-figure-htn", geom.Rect{X: 45, Y: 9, W: 4, H: 6})},
				},
				{
					Background: "assets/fatherfigureNote2.png",
					Links:      []LinkConfig{github("https://github.com/fiof25/father-figure-htn", geom.Rect{X: 79, Y: 8, W: 4, H: 6})},
				},
			},
		},
		{
			ID:     "project/design",
			Parent: "inventory",
			Pages:  []PageConfig{{Background: "assets/designNote.png"}},
		},
		{
			ID:     "project/designto",
			Parent: "inventory",
			Pages: []PageConfig{
				{
					Background: "assets/designtoNote.png",
					Links: []LinkConfig{
						{
							Label: "Marketing campaign",
							URL:   "assets/DesignTO Marketing Campaign-FionaFang.pdf",
							Icon:  "assets/designtoIcon.png",
							Rect:  geom.Rect{X: 70, Y: 70, W: 14, H: 14},
						},
					},
				},
			},
		},
		{
			ID:     "project/jam",
			Parent: "inventory",
			Pages: []PageConfig{
				{
					Background: "assets/jamNote.png",
					Links: []LinkConfig{
						{Label: "Watch demo", URL: "https://www.youtube.com/watch?v=G-rITGNKfxI", Icon: "assets/jamVid.png", Rect: geom.Rect{X: 12, Y: 28, W: 34, H: 30}},
						{Label: "Try demo", URL: "https://eye-tester-app.vercel.app", Icon: "assets/jamLaunchIcon.png", Rect: geom.Rect{X: 60, Y: 70, W: 16, H: 10}},
						github("https://github.com/justinwuzijin/eye-tester-app", geom.Rect{X: 80, Y: 10, W: 4, H: 6}),
					},
				},
			},
		},
		{
			ID:     "project/lucy",
			Parent: "inventory",
			Pages: []PageConfig{
				{
					Background: "assets/lucyNote.png",
					Video: &VideoConfig{
						ID:   "lucy-demo",
						URL:  "https://www.youtube.com/watch?v=GRENRaAo0oI",
						Rect: geom.Rect{X: 12, Y: 28, W: 34, H: 30},
					},
					Links: []LinkConfig{
						{Label: "Miami Hack Week article", URL: "https://refreshmiami.com/news/miami-hack-week-2024-parties-meetups-and-innovative-tech-that-won-over-the-judges/", Icon: "assets/lucyArticle.png", Rect: geom.Rect{X: 58, Y: 30, W: 24, H: 20}},
						{Label: "Lucy on Devpost", URL: "https://devpost.com/software/lucy-0v6lpm", Icon: "assets/lucyProjectIcon.png", Rect: geom.Rect{X: 60, Y: 66, W: 16, H: 10}},
					},
				},
			},
		},
		{
			ID:     "project/revision",
			Parent: "inventory",
			Pages: []PageConfig{
				{
					Background: "assets/revisionNote.png",
					Links: []LinkConfig{
						{Label: "Revision on Devpost", URL: "https://devpost.com/software/revision-v9y65g", Icon: "assets/revisionProjectIcon.png", Rect: geom.Rect{X: 60, Y: 70, W: 16, H: 10}},
					},
				},
			},
		},
		{
			ID:    "shelf",
			Pages: []PageConfig{{Background: "assets/shelfNote.png"}},
		},
		{
			ID: "about_me",
			Pages: []PageConfig{
				{
					Background: "assets/aboutmeNote.png",
					Links:      []LinkConfig{{Label: "GitHub", URL: "https://github.com/fiof25", Icon: "assets/github.png", Rect: geom.Rect{X: 70, Y: 80, W: 6, H: 8}}},
				},
			},
		},
	}
}

func defaultSuitcase() []SuitcaseItem {
	return []SuitcaseItem{
		{Project: "design", Image: "assets/designAsset.png", HoverImage: "assets/designAsset2.png", Rect: geom.Rect{X: 25, Y: 56, W: 18, H: 22}, Z: 6},
		{Project: "designto", Image: "assets/designtoAsset.png", HoverImage: "assets/designtoAsset2.png", Rect: geom.Rect{X: 26, Y: 30, W: 18, H: 24}, Z: 2},
		{Project: "lucy", Image: "assets/lucyAsset.png", HoverImage: "assets/lucyAsset2.png", Rect: geom.Rect{X: 39, Y: 55, W: 16, H: 22}, Z: 5},
		{Project: "jam", Image: "assets/jamAsset.png", HoverImage: "assets/jamAsset2.png", Rect: geom.Rect{X: 63, Y: 30, W: 11, H: 20}, Z: 1},
		{Project: "revision", Image: "assets/revisionAsset.png", HoverImage: "assets/revisionAsset2.png", Rect: geom.Rect{X: 41, Y: 32, W: 27, H: 22}, Z: 3},
		{Project: "fatherfigure", Image: "assets/fatherfigureAsset.png", HoverImage: "assets/fatherfigureAsset2.png", Rect: geom.Rect{X: 53, Y: 54, W: 21, H: 24}, Z: 4},
	}
}
