package service

import "unicode/utf8"

// Character economy constants
const (
	CharRegenRate  = 100 // characters regained per whole elapsed hour
	MaxCharStorage = 200 // balance cap

	extraLinkCost  = 10 // each link beyond the first
	imageBaseCost  = 5  // flat surcharge when any image is attached
	extraImageCost = 20 // each image beyond the first
	videoCost      = 15
)

// CharCost returns how many characters a post costs. Content is charged
// per rune; the first link is free and the first image carries only the
// flat surcharge.
func CharCost(content string, links, images []string, video *string) int64 {
	cost := int64(utf8.RuneCountInString(content))

	if len(links) > 0 {
		cost += int64(len(links)-1) * extraLinkCost
	}
	if len(images) > 0 {
		cost += imageBaseCost + int64(len(images)-1)*extraImageCost
	}
	if video != nil && *video != "" {
		cost += videoCost
	}

	return cost
}
