// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// definitions.go registers the built-in section types. Adding a new type
// means adding one register call here with all four pieces: the default
// content factory, the editor schema, the renderer, and display metadata.
package sitetype

import "vowsite/internal/models"

func init() {
	register(Definition{
		Tag:          models.SectionHero,
		Label:        "Hero Banner",
		Icon:         "sparkles",
		DefaultTitle: "",
		DefaultContent: func() map[string]any {
			return map[string]any{
				"headline": "We're getting married!",
				"subtitle": "",
				"date":     "",
				"venue":    "",
			}
		},
		Editor: []Field{
			{Key: "headline", Label: "Headline", Kind: FieldText, Facet: FacetContent},
			{Key: "subtitle", Label: "Subtitle", Kind: FieldText, Facet: FacetContent},
			{Key: "date", Label: "Wedding date", Kind: FieldDate, Facet: FacetContent},
			{Key: "venue", Label: "Venue", Kind: FieldText, Facet: FacetContent},
			{Key: "backgroundImage", Label: "Background image", Kind: FieldImage, Facet: FacetMedia},
		},
		Render: renderHero,
	})

	register(Definition{
		Tag:          models.SectionStory,
		Label:        "Our Story",
		Icon:         "heart",
		DefaultTitle: "Our Story",
		DefaultContent: func() map[string]any {
			return map[string]any{"body": ""}
		},
		Editor: []Field{
			{Key: "body", Label: "Story", Kind: FieldMarkdown, Facet: FacetContent},
			{Key: "howWeMet", Label: "How we met", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "proposal", Label: "The proposal", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "image", Label: "Photo", Kind: FieldImage, Facet: FacetMedia},
		},
		Render: renderStory,
	})

	register(Definition{
		Tag:          models.SectionEventDetails,
		Label:        "Event Details",
		Icon:         "calendar",
		DefaultTitle: "The Big Day",
		DefaultContent: func() map[string]any {
			return map[string]any{
				"ceremony":  map[string]any{},
				"reception": map[string]any{},
			}
		},
		Editor: []Field{
			{Key: "ceremony", Label: "Ceremony", Kind: FieldGroup, Facet: FacetContent, Fields: eventBlockFields()},
			{Key: "reception", Label: "Reception", Kind: FieldGroup, Facet: FacetContent, Fields: eventBlockFields()},
		},
		Render: renderEventDetails,
	})

	register(Definition{
		Tag:          models.SectionRSVP,
		Label:        "RSVP",
		Icon:         "envelope",
		DefaultTitle: "RSVP",
		DefaultContent: func() map[string]any {
			return map[string]any{"note": "", "deadline": ""}
		},
		Editor: []Field{
			{Key: "note", Label: "Note to guests", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "deadline", Label: "Respond by", Kind: FieldDate, Facet: FacetContent},
			{Key: "email", Label: "RSVP email", Kind: FieldText, Facet: FacetContent},
		},
		Render: renderRSVP,
	})

	register(Definition{
		Tag:          models.SectionGallery,
		Label:        "Gallery",
		Icon:         "photo",
		DefaultTitle: "Gallery",
		DefaultContent: func() map[string]any {
			return map[string]any{"photos": []any{}}
		},
		Editor: []Field{
			{Key: "photos", Label: "Photos", Kind: FieldList, Facet: FacetMedia, Item: []Field{
				{Key: "url", Label: "Image", Kind: FieldImage, Facet: FacetMedia},
				{Key: "caption", Label: "Caption", Kind: FieldText, Facet: FacetMedia},
			}},
		},
		ListItem: map[string]func() map[string]any{
			"photos": func() map[string]any { return map[string]any{"url": "", "caption": ""} },
		},
		Render: renderGallery,
	})

	register(Definition{
		Tag:          models.SectionRegistry,
		Label:        "Registry",
		Icon:         "gift",
		DefaultTitle: "Registry",
		DefaultContent: func() map[string]any {
			return map[string]any{"message": "", "links": []any{}}
		},
		Editor: []Field{
			{Key: "message", Label: "Message", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "links", Label: "Registry links", Kind: FieldList, Facet: FacetContent, Item: []Field{
				{Key: "name", Label: "Store", Kind: FieldText, Facet: FacetContent},
				{Key: "url", Label: "Link", Kind: FieldURL, Facet: FacetContent},
			}},
		},
		ListItem: map[string]func() map[string]any{
			"links": func() map[string]any { return map[string]any{"name": "", "url": ""} },
		},
		Render: renderRegistry,
	})

	register(Definition{
		Tag:          models.SectionBridalParty,
		Label:        "Wedding Party",
		Icon:         "users",
		DefaultTitle: "Wedding Party",
		DefaultContent: func() map[string]any {
			return map[string]any{"members": []any{}}
		},
		Editor: []Field{
			{Key: "members", Label: "Members", Kind: FieldList, Facet: FacetContent, Item: []Field{
				{Key: "name", Label: "Name", Kind: FieldText, Facet: FacetContent},
				{Key: "role", Label: "Role", Kind: FieldText, Facet: FacetContent},
				{Key: "photo", Label: "Photo", Kind: FieldImage, Facet: FacetMedia},
				{Key: "bio", Label: "Bio", Kind: FieldTextarea, Facet: FacetContent},
			}},
		},
		ListItem: map[string]func() map[string]any{
			"members": func() map[string]any {
				return map[string]any{"name": "", "role": "", "photo": "", "bio": ""}
			},
		},
		Render: renderBridalParty,
	})

	register(Definition{
		Tag:          models.SectionTimeline,
		Label:        "Schedule",
		Icon:         "clock",
		DefaultTitle: "Schedule",
		DefaultContent: func() map[string]any {
			return map[string]any{"events": []any{}}
		},
		Editor: []Field{
			{Key: "events", Label: "Events", Kind: FieldList, Facet: FacetContent, Item: []Field{
				{Key: "time", Label: "Time", Kind: FieldTime, Facet: FacetContent},
				{Key: "title", Label: "Event", Kind: FieldText, Facet: FacetContent},
				{Key: "description", Label: "Details", Kind: FieldTextarea, Facet: FacetContent},
			}},
		},
		ListItem: map[string]func() map[string]any{
			"events": func() map[string]any {
				return map[string]any{"time": "", "title": "", "description": ""}
			},
		},
		Render: renderTimeline,
	})

	register(Definition{
		Tag:          models.SectionAccommodations,
		Label:        "Accommodations",
		Icon:         "building",
		DefaultTitle: "Where to Stay",
		DefaultContent: func() map[string]any {
			return map[string]any{"hotels": []any{}}
		},
		Editor: []Field{
			{Key: "hotels", Label: "Hotels", Kind: FieldList, Facet: FacetContent, Item: []Field{
				{Key: "name", Label: "Name", Kind: FieldText, Facet: FacetContent},
				{Key: "address", Label: "Address", Kind: FieldText, Facet: FacetContent},
				{Key: "url", Label: "Booking link", Kind: FieldURL, Facet: FacetContent},
				{Key: "notes", Label: "Notes", Kind: FieldTextarea, Facet: FacetContent},
			}},
		},
		ListItem: map[string]func() map[string]any{
			"hotels": func() map[string]any {
				return map[string]any{"name": "", "address": "", "url": "", "notes": ""}
			},
		},
		Render: renderAccommodations,
	})

	register(Definition{
		Tag:          models.SectionTravel,
		Label:        "Travel",
		Icon:         "map",
		DefaultTitle: "Getting There",
		DefaultContent: func() map[string]any {
			return map[string]any{"directions": "", "parking": "", "transport": ""}
		},
		Editor: []Field{
			{Key: "directions", Label: "Directions", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "parking", Label: "Parking", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "transport", Label: "Transport", Kind: FieldTextarea, Facet: FacetContent},
		},
		Render: renderTravel,
	})

	register(Definition{
		Tag:          models.SectionFAQ,
		Label:        "FAQ",
		Icon:         "question",
		DefaultTitle: "Questions & Answers",
		DefaultContent: func() map[string]any {
			return map[string]any{"items": []any{}}
		},
		Editor: []Field{
			{Key: "items", Label: "Entries", Kind: FieldList, Facet: FacetContent, Item: []Field{
				{Key: "question", Label: "Question", Kind: FieldText, Facet: FacetContent},
				{Key: "answer", Label: "Answer", Kind: FieldTextarea, Facet: FacetContent},
			}},
		},
		ListItem: map[string]func() map[string]any{
			"items": func() map[string]any { return map[string]any{"question": "", "answer": ""} },
		},
		Render: renderFAQ,
	})

	register(Definition{
		Tag:          models.SectionContact,
		Label:        "Contact",
		Icon:         "phone",
		DefaultTitle: "Contact Us",
		DefaultContent: func() map[string]any {
			return map[string]any{"email": "", "phone": "", "message": ""}
		},
		Editor: []Field{
			{Key: "message", Label: "Message", Kind: FieldTextarea, Facet: FacetContent},
			{Key: "email", Label: "Email", Kind: FieldText, Facet: FacetContent},
			{Key: "phone", Label: "Phone", Kind: FieldText, Facet: FacetContent},
		},
		Render: renderContact,
	})
}

func eventBlockFields() []Field {
	return []Field{
		{Key: "date", Label: "Date", Kind: FieldDate, Facet: FacetContent},
		{Key: "time", Label: "Time", Kind: FieldTime, Facet: FacetContent},
		{Key: "location", Label: "Location", Kind: FieldText, Facet: FacetContent},
		{Key: "address", Label: "Address", Kind: FieldText, Facet: FacetContent},
		{Key: "description", Label: "Details", Kind: FieldTextarea, Facet: FacetContent},
	}
}
