// Package order contains the Order aggregate and its lifecycle state
// machine. An order moves CREATED -> COOKING -> SENDED -> DELIVERED, or
// sideways from CREATED into CANCELLED; no other sequence is producible.
// All mutation goes through the aggregate, and persistence applies every
// transition with a conditional write on the prior status.
package order
