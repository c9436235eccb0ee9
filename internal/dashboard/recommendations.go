package dashboard

import "github.com/tinytelemetry/secdash/internal/model"

// RenderRecommendations appends one card per recommendation to the element
// with containerID, preserving order. It returns the number of cards added;
// a missing container adds none.
func RenderRecommendations(doc Document, containerID string, recs []model.Recommendation) int {
	container := doc.ElementByID(containerID)
	if container == nil {
		return 0
	}
	for _, rec := range recs {
		card := doc.CreateElement("", model.ClassRecommendation)
		card.Text = rec.Title
		card.Body = rec.Description
		container.AppendChild(card)
	}
	return len(recs)
}

// Cards returns the recommendations rendered into the element with containerID.
func Cards(doc Document, containerID string) []model.Recommendation {
	container := doc.ElementByID(containerID)
	if container == nil {
		return nil
	}
	var out []model.Recommendation
	for _, child := range container.Children() {
		if child.HasClass(model.ClassRecommendation) {
			out = append(out, model.Recommendation{Title: child.Text, Description: child.Body})
		}
	}
	return out
}
