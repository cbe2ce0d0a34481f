/*
Package ledger implements the wallet ledger engine: the only component
allowed to mutate wallet balances and write transaction rows.

Every mutating operation (Fund, Withdraw, Transfer) runs inside a single
database transaction. Wallet rows are locked with SELECT ... FOR UPDATE
before any balance check, and balance changes are expressed as relative
updates (balance = balance + delta) evaluated by the store, so concurrent
operations against the same wallet serialize correctly and can never
overdraw it. Transfers lock the two wallet rows in ascending wallet-id
order to avoid lock-ordering deadlocks between crossing transfers.

The service itself is stateless; it holds only handles to the repository,
the cache, and a metrics collector, and is safe to share across requests.
*/
package ledger
