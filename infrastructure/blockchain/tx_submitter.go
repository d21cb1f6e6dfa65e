package blockchain

import (
	"context"
	"math/big"

	"theta-oracle-keeper/domain/entities"
	domainerrors "theta-oracle-keeper/domain/errors"
	"theta-oracle-keeper/domain/interfaces"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

const (
	// fallbackGasLimit is used when gas estimation itself fails.
	fallbackGasLimit = 200_000

	// gasMarginPercent is the safety margin added on top of the gas
	// estimate.
	gasMarginPercent = 20
)

// legacyTxSubmitter implements the TransactionSubmitter interface with
// pre-EIP-1559 transactions. Legacy typing keeps the keeper compatible
// with EVM chains that never enabled type-2 transactions.
type legacyTxSubmitter struct {
	chain   interfaces.ChainClient
	signer  interfaces.SignerService
	chainID *big.Int
	logger  interfaces.Logger
}

// NewLegacyTxSubmitter creates a transaction submitter for the given
// chain id.
func NewLegacyTxSubmitter(
	chain interfaces.ChainClient,
	signer interfaces.SignerService,
	chainID *big.Int,
	logger interfaces.Logger,
) interfaces.TransactionSubmitter {
	return &legacyTxSubmitter{
		chain:   chain,
		signer:  signer,
		chainID: new(big.Int).Set(chainID),
		logger:  logger,
	}
}

// submission carries one attempt through the sign-and-broadcast
// protocol. A fresh submission is built per attempt; there is no
// partial resume, every retry re-reads nonce and gas price.
type submission struct {
	req      interfaces.SubmitRequest
	nonce    uint64
	gasPrice *big.Int
	gasLimit uint64
	unsigned *types.Transaction
	sigHash  common.Hash
	signed   *types.Transaction
}

// Submit drives one transaction through gas attachment, sighash
// computation, remote signing, reassembly, and broadcast.
func (s *legacyTxSubmitter) Submit(ctx context.Context, req interfaces.SubmitRequest) (*interfaces.SubmitResult, error) {
	sub := &submission{req: req}

	if err := s.attachGas(ctx, sub); err != nil {
		return nil, err
	}
	s.computeSigHash(sub)

	if err := s.signRemote(ctx, sub); err != nil {
		return nil, err
	}

	txHash, err := s.chain.Broadcast(ctx, sub.signed)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Transaction broadcast",
		"txHash", txHash.Hex(),
		"nonce", sub.nonce,
		"gasLimit", sub.gasLimit,
		"gasPrice", sub.gasPrice.String())

	return &interfaces.SubmitResult{
		TxHash:   txHash,
		Nonce:    sub.nonce,
		GasPrice: sub.gasPrice,
		GasLimit: sub.gasLimit,
	}, nil
}

// attachGas reads the current gas price and sender nonce, and settles
// the gas limit: the caller's explicit limit, or an estimate with a
// safety margin, or the conservative fallback when estimation fails.
func (s *legacyTxSubmitter) attachGas(ctx context.Context, sub *submission) error {
	gasPrice, err := s.chain.GasPrice(ctx)
	if err != nil {
		return err
	}
	sub.gasPrice = gasPrice

	nonce, err := s.chain.PendingNonce(ctx, sub.req.From)
	if err != nil {
		return err
	}
	sub.nonce = nonce

	gasLimit := sub.req.GasLimit
	if gasLimit == 0 {
		estimate, err := s.chain.EstimateGas(ctx, sub.req.From, sub.req.To, sub.req.Data)
		if err != nil {
			s.logger.Warn("Gas estimation failed, using fallback limit",
				"fallback", fallbackGasLimit, "error", err)
			estimate = fallbackGasLimit
		}
		gasLimit = estimate + estimate*gasMarginPercent/100
	}
	sub.gasLimit = gasLimit
	return nil
}

// computeSigHash serializes the unsigned legacy transaction and takes
// its EIP-155 signing hash. This hash is the payload the remote signer
// signs.
func (s *legacyTxSubmitter) computeSigHash(sub *submission) {
	value := sub.req.Value
	if value == nil {
		value = new(big.Int)
	}
	to := sub.req.To

	sub.unsigned = types.NewTx(&types.LegacyTx{
		Nonce:    sub.nonce,
		GasPrice: sub.gasPrice,
		Gas:      sub.gasLimit,
		To:       &to,
		Value:    value,
		Data:     sub.req.Data,
	})
	sub.sigHash = types.NewEIP155Signer(s.chainID).Hash(sub.unsigned)
}

// signRemote sends the sighash to the remote signing service and
// reassembles the signed transaction from the returned (r, s, v)
// components, using the legacy recovery-id convention for v.
func (s *legacyTxSubmitter) signRemote(ctx context.Context, sub *submission) error {
	signature, err := s.signer.Sign(ctx, sub.req.DerivationPath, sub.sigHash)
	if err != nil {
		return err
	}

	sigBytes, err := encodeSignature(signature)
	if err != nil {
		return &domainerrors.ExternalServiceError{
			Service:   "signer",
			Operation: "EncodeSignature",
			Err:       err,
		}
	}

	eip155 := types.NewEIP155Signer(s.chainID)
	signed, err := sub.unsigned.WithSignature(eip155, sigBytes)
	if err != nil {
		return &domainerrors.ExternalServiceError{
			Service:   "signer",
			Operation: "AssembleTransaction",
			Err:       err,
		}
	}
	sub.signed = signed
	return nil
}

// encodeSignature converts an (r, s, v) signature to go-ethereum's
// 65-byte [R || S || V] form, normalizing v to a 0/1 recovery id.
func encodeSignature(sig *entities.Signature) ([]byte, error) {
	if sig == nil || sig.R == nil || sig.S == nil {
		return nil, errors.New("signature components missing")
	}

	recID := sig.V
	if recID >= 27 {
		recID -= 27
	}
	if recID > 1 {
		return nil, errors.Errorf("invalid recovery id %d", sig.V)
	}

	out := make([]byte, 65)
	sig.R.FillBytes(out[:32])
	sig.S.FillBytes(out[32:64])
	out[64] = recID
	return out, nil
}
