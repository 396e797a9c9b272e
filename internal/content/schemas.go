package content

import "google.golang.org/genai"

// Declared response shapes for each structured call. The model is told to
// answer with exactly these schemas; decode failures still fall back per the
// error policy in client.go.

var chapterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"book":    {Type: genai.TypeString},
		"chapter": {Type: genai.TypeInteger},
		"verses": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"verse": {Type: genai.TypeInteger},
					"text":  {Type: genai.TypeString},
				},
			},
		},
	},
}

var searchSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"book":    {Type: genai.TypeString},
			"chapter": {Type: genai.TypeInteger},
			"verse":   {Type: genai.TypeInteger},
			"text":    {Type: genai.TypeString},
		},
	},
}

var reflectionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"reference":  {Type: genai.TypeString, Description: "Ex: Apocalipse 14:6"},
		"text":       {Type: genai.TypeString, Description: "O texto do versículo"},
		"reflection": {Type: genai.TypeString, Description: "Reflexão devocional adventista curta e motivacional"},
	},
}

var syllabusSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeInteger},
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
	},
}

var lessonSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":   {Type: genai.TypeString},
		"content": {Type: genai.TypeString},
	},
}

var quizQuestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question":           {Type: genai.TypeString},
		"options":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"correctOptionIndex": {Type: genai.TypeInteger},
		"explanation":        {Type: genai.TypeString},
		"reference":          {Type: genai.TypeString, Description: "Ex: Gênesis 6:14"},
	},
}

var quizListSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: quizQuestionSchema,
}
