// Package security prices annual security operations from per-unit rates
// and deployment scale.
//
// The itemized controls (SIEM, IAM, encryption, incident response) and the
// scenario's general annual investment are additive, non-overlapping
// budgets. Their sum is the total security spend, which both rolls into the
// security category total and drives the risk model's reduction factor.
package security

import (
	"fmt"

	"datacenter-tco/core/types"
)

// Calculate prices the itemized security controls against the deployment
// scale and adds the scenario's general annual investment.
func Calculate(params types.SecurityParameters, ctx types.ComputationContext) types.SecurityBreakdown {
	siem := types.CostLine{
		Label:    "siem ingestion",
		Quantity: float64(ctx.NodeCount),
		Rate:     params.SiemPerNode,
		Amount:   params.SiemPerNode * float64(ctx.NodeCount),
		Formula:  fmt.Sprintf("%d nodes * $%.2f/node", ctx.NodeCount, params.SiemPerNode),
	}

	iam := types.CostLine{
		Label:    "identity management",
		Quantity: float64(params.UserCount),
		Rate:     params.IamPerUser,
		Amount:   params.IamPerUser * float64(params.UserCount),
		Formula:  fmt.Sprintf("%d users * $%.2f/user", params.UserCount, params.IamPerUser),
	}

	encryption := types.CostLine{
		Label:    "encryption at rest",
		Quantity: ctx.TotalStorageTB,
		Rate:     params.EncryptionPerTB,
		Amount:   params.EncryptionPerTB * ctx.TotalStorageTB,
		Formula:  fmt.Sprintf("%.1f TB * $%.2f/TB", ctx.TotalStorageTB, params.EncryptionPerTB),
	}

	incidentResponse := types.CostLine{
		Label:    "incident response retainer",
		Quantity: 1,
		Rate:     params.IncidentResponseRetainer,
		Amount:   params.IncidentResponseRetainer,
		Formula:  fmt.Sprintf("annual retainer $%.2f", params.IncidentResponseRetainer),
	}

	itemized := siem.Amount + iam.Amount + encryption.Amount + incidentResponse.Amount

	return types.SecurityBreakdown{
		Siem:             siem,
		Iam:              iam,
		Encryption:       encryption,
		IncidentResponse: incidentResponse,
		ItemizedTotal:    itemized,
		AnnualInvestment: params.AnnualInvestment,
		TotalSpend:       itemized + params.AnnualInvestment,
	}
}
