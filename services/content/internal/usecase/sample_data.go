package usecase

import (
	"fmt"
	"strings"
	"time"

	"social-vault/services/content/internal/entity"

	"github.com/google/uuid"
)

const (
	oneOffPrice       = 9.99
	subscriptionPrice = 4.99
)

type sampleCreator struct {
	username        string
	displayName     string
	bio             string
	profileImage    string
	subscriberCount int
}

var sampleCreators = []sampleCreator{
	{
		username:        "sophia_creative",
		displayName:     "Sophia Martinez",
		bio:             "Digital artist & content creator sharing exclusive behind-the-scenes content",
		profileImage:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		subscriberCount: 1243,
	},
	{
		username:        "alex_photo",
		displayName:     "Alex Thompson",
		bio:             "Professional photographer capturing life's beautiful moments",
		profileImage:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		subscriberCount: 856,
	},
	{
		username:        "maya_fitness",
		displayName:     "Maya Johnson",
		bio:             "Fitness coach sharing workout routines and healthy lifestyle tips",
		profileImage:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		subscriberCount: 2156,
	},
}

var sampleImages = []string{
	"https://images.unsplash.com/photo-1636971828014-0f3493cba88a?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1664277497095-424e085175e8?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1627244714766-94dab62ed964?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1630797160666-38e8c5ba44c1?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.pexels.com/photos/3576258/pexels-photo-3576258.jpeg",
	"https://images.pexels.com/photos/33676719/pexels-photo-33676719.jpeg",
	"https://images.unsplash.com/photo-1516321497487-e288fb19713f?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1504270997636-07ddfbd48945?crop=entropy&cs=srgb&fm=jpg&q=85",
}

var sampleTitles = []string{
	"Behind the Scenes: Studio Setup",
	"Professional Lighting Tips",
	"Creative Process Revealed",
	"Exclusive Photography Session",
	"Advanced Editing Techniques",
	"Creative Workspace Tour",
	"Digital Art Process",
	"Content Creation Workflow",
}

var sampleDescriptions = []string{
	"Get an exclusive look at my professional studio setup and equipment",
	"Learn the secrets behind perfect lighting for content creation",
	"Watch my creative process from concept to final result",
	"Access to my premium photography session - subscriber exclusive",
	"Advanced editing techniques that I use in my workflow",
	"Take a tour of my creative workspace and setup",
	"Step-by-step digital art creation process",
	"Complete workflow from planning to publishing content",
}

// itemsFor is the per-creator post count: the first creator has two, the
// rest three.
func itemsFor(creatorIndex int) int {
	if creatorIndex == 0 {
		return 2
	}
	return 3
}

// SampleRoster builds the demonstration corpus. Within a creator, item 0 is
// free, item 1 is paid, and later items are paid and subscription only.
// Items are spaced a minute apart, the first one newest, so recency
// ordering is well defined.
func SampleRoster(now time.Time) ([]*entity.Creator, []*entity.Content) {
	now = now.UTC()

	creators := make([]*entity.Creator, len(sampleCreators))
	for i, sc := range sampleCreators {
		bio, image := sc.bio, sc.profileImage
		creators[i] = &entity.Creator{
			ID:              uuid.New().String(),
			Username:        sc.username,
			Email:           fmt.Sprintf("%s@example.com", strings.SplitN(sc.username, "_", 2)[0]),
			DisplayName:     sc.displayName,
			Bio:             &bio,
			ProfileImage:    &image,
			IsCreator:       true,
			SubscriberCount: sc.subscriberCount,
			CreatedAt:       entity.At(now.Add(-24 * time.Hour).Add(time.Duration(i) * time.Minute)),
		}
	}

	var content []*entity.Content
	for i, creator := range creators {
		for j := 0; j < itemsFor(i); j++ {
			idx := i*3 + j

			isFree := j == 0
			var price *float64
			if !isFree {
				p := oneOffPrice
				if j >= 2 {
					p = subscriptionPrice
				}
				price = &p
			}
			tags := []string{"free", "preview"}
			if !isFree {
				tags = []string{"creative", "exclusive", "premium"}
			}
			description := sampleDescriptions[idx%len(sampleDescriptions)]

			content = append(content, &entity.Content{
				ID:                  uuid.New().String(),
				CreatorID:           creator.ID,
				CreatorUsername:     creator.Username,
				CreatorDisplayName:  creator.DisplayName,
				CreatorProfileImage: creator.ProfileImage,
				Title:               sampleTitles[idx%len(sampleTitles)],
				Description:         &description,
				ContentType:         entity.ContentTypeImage,
				MediaURLs:           []string{sampleImages[idx%len(sampleImages)]},
				IsFree:              isFree,
				Price:               price,
				SubscriptionOnly:    j >= 2,
				Tags:                tags,
				LikeCount:           12 + i*15 + j*8,
				CommentCount:        3 + i*2 + j,
				ViewCount:           156 + i*50 + j*20,
				CreatedAt:           entity.At(now.Add(-time.Duration(len(content)) * time.Minute)),
			})
		}
	}

	return creators, content
}
