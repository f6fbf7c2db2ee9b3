package queries

import (
	"errors"
	"strings"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to the actor.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, "maria", 0, ParseOrderSort("-prazo"))
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor   *user.User
	search  string
	dentist kernel.ID
	sort    OrderSort

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the listing. search matches the order id exactly or the
// patient name partially, ignoring case. dentist filters by owner and may be zero;
// it only applies to internal staff.
func NewListOrdersQuery(actor *user.User, search string, dentist kernel.ID, sort OrderSort) (ListOrdersQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:   actor,
		search:  strings.TrimSpace(search),
		dentist: dentist,
		sort:    sort,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() *user.User  { return q.actor }
func (q ListOrdersQuery) Search() string     { return q.search }
func (q ListOrdersQuery) Dentist() kernel.ID { return q.dentist }
func (q ListOrdersQuery) Sort() OrderSort    { return q.sort }
