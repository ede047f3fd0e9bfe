// uploader is the AWS v1 publish handler implementing the
// ports.ForUploading interface. It uploads the rendered feed
// document to the configured S3 bucket and can diff a local file
// against the published object before replacing it.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/gabriel-vasile/mimetype"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/sa6mwa/mkfeed/internal/app/humanreadable"
	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/logger"
)

var (
	ErrNilPointerRequest error = errors.New("received nil pointer as request")
	ErrFilenameMissing   error = errors.New("empty or missing filename given")
)

type forUploading struct {
	cfg     model.AwsConfig
	session *session.Session
}

// New returns an S3 publisher for the bucket in cfg. The session
// resolves credentials through the usual AWS chain using the
// configured profile and region.
func New(cfg model.AwsConfig) ports.ForUploading {
	s := session.Must(session.NewSessionWithOptions(session.Options{
		Profile: cfg.Profile,
		Config: aws.Config{
			Region: aws.String(cfg.Region),
		},
	}))
	return &forUploading{
		cfg:     cfg,
		session: s,
	}
}

func (u *forUploading) getContentType(filename string) (contentType string, err error) {
	mimetype.SetLimit(1024 * 1024)
	mimeType, err := mimetype.DetectFile(filename)
	if err != nil {
		return "", err
	}
	return mimeType.String(), nil
}

// Upload r.From as r.To to the S3 bucket in r.Store. If ContentType
// is empty in r, the content-type of the file in the r.From field is
// detected.
func (u *forUploading) Upload(ctx context.Context, r *ports.ForUploadingRequest) error {
	l := logger.FromContext(ctx)
	if r == nil {
		return ErrNilPointerRequest
	}

	if strings.TrimSpace(r.From) == "" {
		return ErrFilenameMissing
	}

	// Get Content-Type if none was given in the request.
	if strings.TrimSpace(r.ContentType) == "" {
		var err error
		r.ContentType, err = u.getContentType(r.From)
		if err != nil {
			return err
		}
	}

	if strings.TrimSpace(r.To) == "" {
		r.To = r.From
	}
	if r.StorageClass == "" {
		r.StorageClass = "STANDARD"
	}
	s3path := "s3://" + path.Join(r.Store, r.To)
	fi, err := os.Stat(r.From)
	if err != nil {
		return err
	}
	l.Info("Uploading to S3", "file", r.From, "to", s3path, "storageClass", r.StorageClass, "size", fi.Size(), "humanSize", humanreadable.IEC(fi.Size()))
	f, err := os.Open(r.From)
	if err != nil {
		return err
	}
	defer f.Close()
	uploader := s3manager.NewUploader(u.session)
	result, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(r.Store),
		Key:          aws.String(r.To),
		ContentType:  aws.String(r.ContentType),
		Body:         f,
		StorageClass: aws.String(r.StorageClass),
	})
	if err != nil {
		return err
	}
	l.Info("Upload succeeded", "location", aws.StringValue(&result.Location))
	return nil
}

// Diff fileToDiff by downloading key from the bucket and comparing
// content with the content in fileToDiff. Prints diff to stdout. A
// missing remote object is not an error as there is nothing to diff
// on first publish.
func (u *forUploading) Diff(ctx context.Context, bucket, key, fileToDiff string) error {
	l := logger.FromContext(ctx)

	fileContent, err := os.ReadFile(fileToDiff)
	if err != nil {
		return err
	}
	downloader := s3manager.NewDownloader(u.session)
	buf := aws.NewWriteAtBuffer([]byte{})
	size, err := downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			switch awsErr.Code() {
			case "NotFound", "NoSuchKey":
				l.Info("Skipping diff", "file", fileToDiff, "path", "s3://"+path.Join(bucket, key), "error", err)
				return nil
			default:
				return err
			}
		} else {
			return err
		}
	}
	l.Info("Buffered successfully", "path", "s3://"+path.Join(bucket, key), "bytes", size)
	l.Info("Diff follows", "to", fileToDiff, "from", "s3://"+path.Join(bucket, key))

	edits := myers.ComputeEdits(span.URIFromPath("s3://"+path.Join(bucket, key)), string(buf.Bytes()), string(fileContent))
	diff := fmt.Sprint(gotextdiff.ToUnified("s3://"+path.Join(bucket, key), fileToDiff, string(buf.Bytes()), edits))
	fmt.Println(diff)

	return nil
}
