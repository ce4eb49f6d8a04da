package utils

import (
	"fmt"

	"academie_back_end/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande.
// qrBase64 est le QR de retrait boutique (peut être vide).
func GenerateOrderConfirmationHTML(order models.Order, qrBase64 string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		name := item.ProductName
		if item.VariantName != "" {
			name += " — " + item.VariantName
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d FCFA</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d FCFA</td>
			</tr>`, name, item.Quantity, item.UnitPrice, item.TotalPrice)
	}

	qrHTML := ""
	if qrBase64 != "" {
		qrHTML = fmt.Sprintf(`
		<p>Présentez ce code à la boutique de l'académie pour un retrait sur place :</p>
		<img src="%s" alt="QR retrait" style="width: 180px; height: 180px;"/>`, qrBase64)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #14532d;">Commande %s confirmée</h2>
		<p>Bonjour,</p>
		<p>Merci pour votre commande à la boutique de l'académie.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Article</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Sous-total :</td>
					<td style="padding: 8px;">%d FCFA</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Livraison :</td>
					<td style="padding: 8px;">%d FCFA</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total :</td>
					<td style="padding: 8px; font-weight: bold;">%d FCFA</td>
				</tr>
			</tfoot>
		</table>
		%s
		<p style="margin-top: 30px; color: #555;">
			Sportivement,<br>
			<strong>L'Académie Étoile</strong>
		</p>
	</div>
</body>
</html>`, order.OrderNumber, itemsHTML, order.Subtotal, order.ShippingCost, order.Total, qrHTML)
}

// GenerateVisitRequestHTML — notification interne d'une nouvelle demande de visite
func GenerateVisitRequestHTML(visit models.VisitRequest) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; padding: 20px;">
	<h2>Nouvelle demande de visite</h2>
	<p><strong>%s %s</strong> (%s) souhaite visiter l'académie.</p>
	<ul>
		<li>Email : %s</li>
		<li>Téléphone : %s</li>
		<li>Date souhaitée : %s</li>
	</ul>
	<p>%s</p>
</body>
</html>`, visit.FirstName, visit.LastName, visit.VisitorType,
		visit.Email, visit.Phone, visit.PreferredDate.Format("02/01/2006"), visit.Message)
}

// GenerateApplicationReceivedHTML — accusé de réception d'une candidature
func GenerateApplicationReceivedHTML(app models.Application) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; padding: 20px;">
	<h2>Candidature bien reçue</h2>
	<p>Bonjour %s,</p>
	<p>Nous avons bien reçu votre candidature au poste de %s.
	Notre équipe sportive l'examinera et reviendra vers vous rapidement.</p>
	<p style="color: #555;">Sportivement,<br><strong>L'Académie Étoile</strong></p>
</body>
</html>`, app.FirstName, app.Position)
}
