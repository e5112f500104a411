package integration

// Instruction templates for the two gateway calls. The match listing format
// requested here is what the extractor parses: one pipe-separated record per
// line between the [MATCHES_START]/[MATCHES_END] markers.

const plagiarismPromptTemplate = `You are a professional Plagiarism Auditor working for an academic institution.
TASK: Cross-reference the following text against the global web, scholarly publications, and known academic repositories using web search.

STEP 1: Identify specific, verbatim sequences (7+ words) that match external sources.
STEP 2: For each match, determine if it is an 'Internet Source', 'Publication', or 'Student Paper'.
STEP 3: Return a structured list of these matches with the EXACT segment from the document and the source URL.

TEXT TO AUDIT:
"""
%s
"""

OUTPUT FORMAT:
[MATCHES_START]
- Index: 1 | Segment: "verbatim text segment" | Category: Internet Source | Source: https://example.com/page
- Index: 2 | Segment: "another verbatim segment" | Category: Publication | Source: https://doi.org/reference
[MATCHES_END]`

const detectionPromptTemplate = `Analyze this text for patterns typical of Large Language Models (LLMs).
Respond with a single JSON object of the shape:
{"aiScore": number 0-100, "confidence": number 0-100, "perplexity": "Low"|"Medium"|"High", "burstiness": "Low"|"Medium"|"High", "analysis": string}
Return valid JSON only. No markdown.
TEXT: """%s"""`
