// Package e2e exercises the full API flow against an in-process server.
package e2e

// serviceAgreement is a small but realistic contract covering every feature:
// glossary terms, risk keywords, termination and payment clauses, and enough
// sentences to make ranking meaningful.
const serviceAgreement = `This Service Agreement is entered into between Acme Corp and the Client.
The Client shall pay a monthly fee of $500 for the services described herein.
Either party may terminate this agreement with 30 days written notice.
The Client shall indemnify Acme Corp against all third-party claims.
Acme Corp's total liability shall not exceed the fees paid in the prior twelve months.
A penalty of 2% per month applies to late payment.
Any breach of confidentiality is grounds for immediate termination.
This agreement is governed by the jurisdiction of the State of Delaware.
Notwithstanding the foregoing, force majeure events excuse performance.
The weather in Delaware is often pleasant.`

// shortNote has no risk keywords and no clause matches.
const shortNote = "The weather is nice. Birds are singing."
