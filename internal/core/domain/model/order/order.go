package order

import (
	"errors"
	"fmt"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/menu"
	"waiter/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrWaiterIsRequired is returned when attempting to create an order without a waiter.
	ErrWaiterIsRequired = errs.NewValueIsRequiredError("waiter")
)

// Order represents one table-service transaction. It is the aggregate root
// composing the item ledger (line items with pricing), the lifecycle state
// machine (status), and identity/audit fields (creator, refund metadata).
//
// Order follows these invariants:
//   - Total equals the sum of quantity * unit price over current lines,
//     recomputed on every ledger mutation until payment freezes it
//   - Refund fields are set together by Refund, never partially
//   - Payment method and refund fields track the guarded transitions only;
//     SetStatus moves the status without touching either
//   - Lines are owned exclusively by the order; there is at most one line
//     per menu item and its quantity is always >= 1
type Order struct {
	id        kernel.UUID
	createdAt time.Time
	status    Status
	waiter    string
	lines     []*Line

	paymentMethod *PaymentMethod
	totalAmount   float64

	refundedBy   *string
	refundReason *string
	refundedAt   *time.Time

	isConstructed bool
}

// NewOrder creates an empty Order in NEW status with a zero total.
// Lines are attached afterwards via AddLine.
func NewOrder(id kernel.UUID, waiter string, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        New,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setWaiter(waiter),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Beyond field validation it checks only the invariants no operation sequence
// can break: refund metadata is all-or-none and the total is never negative.
// Payment method and refund presence are not checked against the status,
// since SetStatus can move the status independently of either.
func RestoreOrder(
	id kernel.UUID,
	createdAt time.Time,
	status Status,
	waiter string,
	lines []*Line,
	paymentMethod *PaymentMethod,
	totalAmount float64,
	refundedBy *string,
	refundReason *string,
	refundedAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setWaiter(waiter),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	order.lines = lines

	if paymentMethod != nil {
		if err := paymentMethod.Validate(); err != nil {
			return nil, err
		}
	}
	order.paymentMethod = paymentMethod

	hasRefund := refundedBy != nil && refundReason != nil && refundedAt != nil
	if !hasRefund && (refundedBy != nil || refundReason != nil || refundedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"refund metadata",
			errors.New("refundedBy, refundReason and refundedAt must be set together"),
		)
	}
	order.refundedBy = refundedBy
	order.refundReason = refundReason
	order.refundedAt = refundedAt

	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%v is negative", totalAmount))
	}
	order.totalAmount = totalAmount

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Waiter returns the username of the waiter who created the order.
func (o *Order) Waiter() string {
	return o.waiter
}

// Lines returns the order's line items. The returned slice is a copy; lines
// themselves are owned by the order and immutable from outside.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// PaymentMethod returns how the order was paid, or nil if unpaid.
func (o *Order) PaymentMethod() *PaymentMethod {
	return o.paymentMethod
}

// Total returns the cached total amount: the running sum of line subtotals,
// or the frozen amount once the order is PAID or REFUNDED.
func (o *Order) Total() float64 {
	return o.totalAmount
}

// RefundedBy returns who issued the refund, or nil if not refunded.
func (o *Order) RefundedBy() *string {
	return o.refundedBy
}

// RefundReason returns why the order was refunded, or nil if not refunded.
func (o *Order) RefundReason() *string {
	return o.refundReason
}

// RefundedAt returns when the order was refunded, or nil if not refunded.
func (o *Order) RefundedAt() *time.Time {
	return o.refundedAt
}

// AddLine adds quantity of the given menu item to the order. If a line for
// that menu item already exists its quantity is incremented, otherwise a new
// line is created with the given id and comment. The total is recomputed from
// the lines' unit prices, with the mutated line priced at the item's current
// menu price.
//
// Fails with an invalid-value error if quantity < 1 and with an invalid-state
// error if the order total is frozen (PAID or REFUNDED).
func (o *Order) AddLine(lineID kernel.UUID, item *menu.MenuItem, quantity int, comment string) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	if existing := o.findLine(item.ID()); existing != nil {
		existing.addQuantity(quantity)
		existing.refreshPrice(item.Price())
	} else {
		line, err := newLine(lineID, item, quantity, comment)
		if err != nil {
			return err
		}
		o.lines = append(o.lines, line)
	}

	o.totalAmount = o.sumLines()
	return nil
}

// RemoveLine removes quantity of the given menu item from the order. If the
// remaining quantity would drop to zero or below, the whole line is removed.
// The total is recomputed from the remaining lines.
//
// Fails with a not-found error if the order has no line for that menu item,
// with an invalid-value error if quantity < 1, and with an invalid-state
// error if the order total is frozen.
func (o *Order) RemoveLine(menuItemID kernel.UUID, quantity int) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	line := o.findLine(menuItemID)
	if line == nil {
		return errs.NewObjectNotFoundError("menuItemId", menuItemID.String())
	}

	if line.removeQuantity(quantity) {
		for i, l := range o.lines {
			if l == line {
				o.lines = append(o.lines[:i], o.lines[i+1:]...)
				break
			}
		}
	}

	o.totalAmount = o.sumLines()
	return nil
}

// RecalculateTotal re-reads the current menu price for every line via priceOf,
// refreshes the lines' unit prices, and recomputes the total. It is a no-op
// once the total is frozen (PAID or REFUNDED).
func (o *Order) RecalculateTotal(priceOf func(menuItemID kernel.UUID) (float64, error)) error {
	if o.status.TotalFrozen() {
		return nil
	}

	for _, line := range o.lines {
		price, err := priceOf(line.MenuItemID())
		if err != nil {
			return err
		}
		line.refreshPrice(price)
	}

	o.totalAmount = o.sumLines()
	return nil
}

// Pay settles the order. Only READY orders can be paid; the payment method is
// required. On success the status becomes PAID and the total is frozen at the
// sum over current lines.
func (o *Order) Pay(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentMethod = &method
	o.totalAmount = o.sumLines()
	return nil
}

// Cancel cancels the order. Rejected for PAID and REFUNDED orders; calling
// Cancel on an already cancelled order is allowed and keeps it CANCELLED.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Refund refunds a PAID order, recording who refunded it, why, and when.
func (o *Order) Refund(refundedBy string, reason string, at time.Time) error {
	if refundedBy == "" {
		return errs.NewValueIsRequiredError("refundedBy")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.refundedBy = &refundedBy
	o.refundReason = &reason
	o.refundedAt = &at
	return nil
}

// SetStatus changes the status unconditionally. This is the unguarded
// administrative transition used for the kitchen progression
// NEW -> IN_PREPARATION -> READY; it only rejects invalid status values.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// ensureMutable rejects ledger mutations once the total is frozen: changing
// lines under a frozen total would silently break the total invariant.
func (o *Order) ensureMutable() error {
	if o.status.TotalFrozen() {
		return errs.NewInvalidStateErrorWithCause(
			"cannot modify items of a paid or refunded order",
			fmt.Errorf("current status is %s", o.status),
		)
	}
	return nil
}

func (o *Order) findLine(menuItemID kernel.UUID) *Line {
	for _, line := range o.lines {
		if line.MenuItemID().IsEqual(menuItemID) {
			return line
		}
	}
	return nil
}

func (o *Order) sumLines() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWaiter(waiter string) error {
	if waiter == "" {
		return ErrWaiterIsRequired
	}
	o.waiter = waiter
	return nil
}
