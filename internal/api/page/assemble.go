package page

import (
	"log"

	sectionsapi "vitrine-app/internal/api/sections"
	settingsapi "vitrine-app/internal/api/settings"
	socialapi "vitrine-app/internal/api/social"
	"vitrine-app/internal/domain/sections"
	"vitrine-app/internal/domain/social"

	"gorm.io/gorm"
)

// AssembleHome builds the v2 home-page view model. Any persistence failure
// degrades to an empty-content page: the public site must always render,
// even with nothing on it. The degradation is logged so operators notice.
func AssembleHome(db *gorm.DB) HomeView {
	view, err := assembleHome(db)
	if err != nil {
		log.Printf("home page assembly degraded to empty view: %v", err)
		return HomeView{
			Sections:    []sections.Section{},
			SocialLinks: []social.SocialLink{},
		}
	}
	return view
}

func assembleHome(db *gorm.DB) (HomeView, error) {
	rows, err := sectionsapi.ListVisibleSections(db)
	if err != nil {
		return HomeView{}, err
	}

	links, err := socialapi.ListVisibleSocialLinks(db)
	if err != nil {
		return HomeView{}, err
	}

	pageSettings, err := settingsapi.GetSettings(db)
	if err != nil {
		return HomeView{}, err
	}

	return HomeView{
		Sections:    rows,
		SocialLinks: links,
		Settings:    pageSettings,
	}, nil
}
