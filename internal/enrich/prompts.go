package enrich

import "fmt"

// Prompt templates are fixed. The summary stage asks for structured
// Markdown, the other two for JSON matching the schemas in the models
// package.

const summaryTemplate = `Create a comprehensive and well-structured summary of this educational content. Follow this format:

# Main Topic Title

## Overview
[Brief overview paragraph of the entire content]

## Key Points
* [Key point 1]
* [Key point 2]
* [Key point 3]
...

## Detailed Summary
### Section 1: [Section Title]
[Detailed explanation with important concepts and examples]

### Section 2: [Section Title]
[Detailed explanation with important concepts and examples]
...

## Important Concepts
* **[Concept 1]**: [Brief explanation]
* **[Concept 2]**: [Brief explanation]
...

## Practical Applications
* [Application 1]
* [Application 2]
...

Content to summarize:
%s`

const conceptsTemplate = `Analyze this educational content and extract key concepts. For each concept:
1. Identify the concept name
2. Rate its importance (1-5, where 5 is most important)
3. Provide a detailed description
4. Include relevant examples or applications
5. Note any prerequisites or related concepts

Format as JSON array:
[{
  "concept": "concept name",
  "importance": importance_number,
  "description": "detailed description",
  "examples": ["example 1", "example 2"],
  "prerequisites": ["prerequisite 1", "prerequisite 2"],
  "relatedConcepts": ["related concept 1", "related concept 2"]
}]

Content to analyze:
%s`

const mindMapTemplate = `Create a visually structured mind map for this educational content. The mind map should be hierarchical and comprehensive.

1. Structure:
   - Start with ONE central topic that summarizes the main subject
   - Create 3-5 main branches for key themes/topics
   - Add 2-4 sub-branches under each main branch
   - Include relevant examples, applications, or details as leaf nodes
   - Add cross-connections between related concepts

2. For each node, provide:
   - Clear, concise label
   - Brief description (1-2 sentences)
   - Importance level (1-5)
   - Proper categorization (concept/example/application/definition)

3. For each connection, specify:
   - Clear relationship type (e.g., "defines", "leads to", "example of")
   - Brief description of how they're related

Format the response as a JSON object with this EXACT structure:
{
  "nodes": [
    {
      "id": "unique_id",
      "label": "concise name",
      "description": "1-2 sentence description",
      "category": "concept/example/application/definition",
      "level": "central/main/sub/leaf",
      "importance": 1-5
    }
  ],
  "edges": [
    {
      "source": "parent_node_id",
      "target": "child_node_id",
      "relationship": "defines/contains/leads_to/example_of/related_to",
      "description": "brief description of relationship"
    }
  ],
  "layout": {
    "central": ["id_of_central_node"],
    "main_branches": ["ids_of_main_topic_nodes"],
    "sub_branches": ["ids_of_subtopic_nodes"]
  }
}

Make sure to:
1. Use descriptive IDs (e.g., "algorithms_intro", "sorting_types")
2. Create a balanced structure with good visual hierarchy
3. Include practical examples and applications
4. Add meaningful cross-connections between branches
5. Keep labels concise but descriptive

Content to analyze:
%s`

func summaryPrompt(content string) string {
	return fmt.Sprintf(summaryTemplate, content)
}

func conceptsPrompt(content string) string {
	return fmt.Sprintf(conceptsTemplate, content)
}

func mindMapPrompt(content string) string {
	return fmt.Sprintf(mindMapTemplate, content)
}
