package demo

import "github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"

// fixtures returns a fresh copy of the sample records.
func fixtures() []domain.RawRecord {
	return []domain.RawRecord{
		{Type: domain.ResourceProject, Fields: map[string]any{
			"id":     "job_demo_1",
			"name":   "Kitchen Remodel - Smith Residence",
			"number": "1001",
			"status": "In Progress",
			"description": "Complete kitchen renovation including new cabinets, countertops, " +
				"and appliances. Budget: $50,000.",
			"createdAt": "2024-03-04",
			"location": map[string]any{
				"name":    "Smith Residence",
				"address": "123 Oak Street, Dallas, TX",
				"account": map[string]any{"id": "customer_demo_1", "name": "John Smith"},
			},
		}},
		{Type: domain.ResourceProject, Fields: map[string]any{
			"id":     "job_demo_2",
			"name":   "Office Building Renovation - Downtown",
			"number": "1002",
			"status": "Planning",
			"description": "Commercial office space renovation for tech startup. " +
				"Budget: $250,000.",
			"createdAt": "2024-05-20",
			"location": map[string]any{
				"name":    "TechCorp HQ",
				"address": "Downtown Dallas Business District",
				"account": map[string]any{"id": "customer_demo_2", "name": "TechCorp Inc"},
			},
		}},
		{Type: domain.ResourceProject, Fields: map[string]any{
			"id":     "job_demo_3",
			"name":   "Bathroom Remodel - Johnson Home",
			"number": "0987",
			"status": "Completed",
			"description": "Master bathroom renovation with luxury finishes. Budget: $35,000. " +
				"Project included new tile, vanity, and fixtures.",
			"createdAt": "2023-11-02",
			"location": map[string]any{
				"name":    "Johnson Home",
				"address": "48 Elm Drive, Plano, TX",
				"account": map[string]any{"id": "customer_demo_3", "name": "Sarah Johnson"},
			},
		}},
		{Type: domain.ResourceCustomer, Fields: map[string]any{
			"id":   "customer_demo_1",
			"name": "John Smith",
			"type": "customer",
			"notes": "Long-term residential customer with 3 completed projects. " +
				"Excellent payment history. Prefers modern design styles.",
			"createdAt": "2021-06-11",
			"primaryContact": map[string]any{
				"name":  "John Smith",
				"email": "john.smith@example.com",
				"phone": "(214) 555-0101",
			},
		}},
		{Type: domain.ResourceCustomer, Fields: map[string]any{
			"id":   "customer_demo_2",
			"name": "TechCorp Inc",
			"type": "customer",
			"notes": "Growing tech company needing office renovations. Budget range: " +
				"$200k-500k. Fast decision-making process.",
			"createdAt": "2024-04-30",
			"primaryContact": map[string]any{
				"name":  "Dana Lee",
				"email": "facilities@techcorp.example.com",
				"phone": "(214) 555-0199",
			},
		}},
		{Type: domain.ResourceDocument, Fields: map[string]any{
			"id":          "document_demo_1",
			"name":        "Kitchen Remodel Estimate",
			"number":      "E-1001",
			"type":        "Estimate",
			"status":      "Approved",
			"description": "Cabinets, quartz countertops, appliance package and installation.",
			"issueDate":   "2024-03-06",
			"dueDate":     "2024-03-20",
			"price":       50000,
			"job":         map[string]any{"id": "job_demo_1", "name": "Kitchen Remodel - Smith Residence"},
		}},
		{Type: domain.ResourceDocument, Fields: map[string]any{
			"id":          "document_demo_2",
			"name":        "Bathroom Remodel Final Invoice",
			"number":      "I-0987",
			"type":        "Invoice",
			"status":      "Paid",
			"description": "Final invoice for tile, vanity, and fixtures.",
			"issueDate":   "2024-01-15",
			"dueDate":     "2024-02-14",
			"price":       35000,
			"job":         map[string]any{"id": "job_demo_3", "name": "Bathroom Remodel - Johnson Home"},
		}},
	}
}
