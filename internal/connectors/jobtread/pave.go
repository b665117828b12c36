package jobtread

import (
	"fmt"
	"strings"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// resource describes where a resource type lives in the Pave graph.
type resource struct {
	// collection is the organization field listing records.
	collection string

	// node is the root field fetching one record by id.
	node string

	// filters are extra where clauses applied to every search.
	filters [][]any

	// fields is the Pave selection for one record.
	fields map[string]any
}

// sel builds a Pave selection from field names; nested selections are maps.
func sel(names ...any) map[string]any {
	out := make(map[string]any, len(names))
	for _, n := range names {
		switch v := n.(type) {
		case string:
			out[v] = map[string]any{}
		case map[string]any:
			for k, sub := range v {
				out[k] = sub
			}
		}
	}
	return out
}

var resources = map[domain.ResourceType]resource{
	domain.ResourceProject: {
		collection: "jobs",
		node:       "job",
		fields: sel("id", "name", "number", "description", "status", "createdAt",
			map[string]any{"location": sel("name", "address",
				map[string]any{"account": sel("id", "name")})}),
	},
	domain.ResourceCustomer: {
		collection: "accounts",
		node:       "account",
		filters:    [][]any{{"type", "=", "customer"}},
		fields: sel("id", "name", "type", "notes", "createdAt",
			map[string]any{"primaryContact": sel("name", "email", "phone")}),
	},
	domain.ResourceDocument: {
		collection: "documents",
		node:       "document",
		fields: sel("id", "name", "number", "type", "status", "description",
			"issueDate", "dueDate", "price",
			map[string]any{"job": sel("id", "name")}),
	},
}

// matches reports whether a fetched record satisfies the resource's
// equality filters. Get looks records up by id alone, so an account of
// another type must not pass as a customer.
func (r resource) matches(fields map[string]any) bool {
	for _, f := range r.filters {
		if len(f) != 3 || f[1] != "=" {
			continue
		}
		key, _ := f[0].(string)
		got, ok := fields[key]
		if !ok || got == nil || !strings.EqualFold(fmt.Sprint(got), fmt.Sprint(f[2])) {
			return false
		}
	}
	return true
}

func lookupResource(rt domain.ResourceType) (resource, error) {
	res, ok := resources[rt]
	if !ok {
		return resource{}, fmt.Errorf("%w: unknown resource type %q", domain.ErrInvalidInput, rt)
	}
	return res, nil
}

// likePattern escapes Pave LIKE wildcards in user text.
func likePattern(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(text) + "%"
}

// searchQuery builds the Pave query listing records of one type by name.
func searchQuery(creds domain.Credentials, res resource, text string, limit int) map[string]any {
	clauses := make([]any, 0, len(res.filters)+1)
	for _, f := range res.filters {
		clauses = append(clauses, f)
	}
	clauses = append(clauses, []any{"name", "like", likePattern(text)})

	var where any = clauses[0]
	if len(clauses) > 1 {
		where = map[string]any{"and": clauses}
	}

	return map[string]any{
		"query": map[string]any{
			"$": map[string]any{"grantKey": creds.APIKey},
			"organization": map[string]any{
				"$": map[string]any{"id": creds.OrgID},
				res.collection: map[string]any{
					"$":     map[string]any{"size": limit, "where": where},
					"nodes": res.fields,
				},
			},
		},
	}
}

// getQuery builds the Pave query fetching one record by id.
func getQuery(creds domain.Credentials, res resource, id string) map[string]any {
	node := make(map[string]any, len(res.fields)+1)
	for k, v := range res.fields {
		node[k] = v
	}
	node["$"] = map[string]any{"id": id}

	return map[string]any{
		"query": map[string]any{
			"$":      map[string]any{"grantKey": creds.APIKey},
			res.node: node,
		},
	}
}
